package quoting

// reservedWords is the fixed Redshift reserved-word set, upper-cased.
// Source: "Reserved words" in the Amazon Redshift database developer guide.
var reservedWords = map[string]struct{}{}

func init() {
	words := []string{
		"AES128", "AES256", "ALL", "ALLOWOVERWRITE", "ANALYSE", "ANALYZE",
		"AND", "ANY", "ARRAY", "AS", "ASC", "AUTHORIZATION", "AZ64",
		"BACKUP", "BETWEEN", "BINARY", "BLANKSASNULL", "BOTH", "BYTEDICT",
		"BZIP2", "CASE", "CAST", "CHECK", "COLLATE", "COLUMN", "CONSTRAINT",
		"CREATE", "CREDENTIALS", "CROSS", "CURRENT_DATE", "CURRENT_TIME",
		"CURRENT_TIMESTAMP", "CURRENT_USER", "CURRENT_USER_ID", "DEFAULT",
		"DEFERRABLE", "DEFLATE", "DEFRAG", "DELTA", "DELTA32K", "DESC",
		"DISABLE", "DISTINCT", "DO", "ELSE", "EMPTYASNULL", "ENABLE",
		"ENCODE", "ENCRYPT", "ENCRYPTION", "END", "EXCEPT", "EXPLICIT",
		"FALSE", "FOR", "FOREIGN", "FREEZE", "FROM", "FULL",
		"GLOBALDICT256", "GLOBALDICT64K", "GRANT", "GROUP", "GZIP",
		"HAVING", "IDENTITY", "IGNORE", "ILIKE", "IN", "INITIALLY",
		"INNER", "INTERSECT", "INTERVAL", "INTO", "IS", "ISNULL", "JOIN",
		"LANGUAGE", "LEADING", "LEFT", "LIKE", "LIMIT", "LOCALTIME",
		"LOCALTIMESTAMP", "LUN", "LUNS", "LZO", "LZOP", "MINUS",
		"MOSTLY16", "MOSTLY32", "MOSTLY8", "NATURAL", "NEW", "NOT",
		"NOTNULL", "NULL", "NULLS", "OFF", "OFFLINE", "OFFSET", "OID",
		"OLD", "ON", "ONLY", "OPEN", "OR", "ORDER", "OUTER", "OVERLAPS",
		"PARALLEL", "PARTITION", "PERCENT", "PERMISSIONS", "PIVOT",
		"PLACING", "PRIMARY", "RAW", "READRATIO", "RECOVER", "REFERENCES",
		"REJECTLOG", "RESORT", "RESPECT", "RESTORE", "RIGHT", "SELECT",
		"SESSION_USER", "SIMILAR", "SNAPSHOT", "SOME", "SYSDATE", "SYSTEM",
		"TABLE", "TAG", "TDES", "TEXT255", "TEXT32K", "THEN", "TIMESTAMP",
		"TO", "TOP", "TRAILING", "TRUE", "TRUNCATECOLUMNS", "UNION",
		"UNIQUE", "UNNEST", "UNPIVOT", "USER", "USING", "VERBOSE",
		"WALLET", "WHEN", "WHERE", "WITH", "WITHOUT",
	}
	for _, w := range words {
		reservedWords[w] = struct{}{}
	}
}
