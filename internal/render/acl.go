package render

import (
	"sort"
	"strings"
)

// privilegeNames maps catalog privilege codes to SQL keywords. Codes missing
// from this table (TRUNCATE 'D', TRIGGER 't', ...) cannot be granted on a
// Redshift target and are silently dropped.
var privilegeNames = map[byte]string{
	'r': "SELECT",
	'a': "INSERT",
	'w': "UPDATE",
	'd': "DELETE",
	'x': "REFERENCES",
	'X': "EXECUTE",
	'U': "USAGE",
	'C': "CREATE",
	'T': "TEMPORARY",
}

// groupGranteePrefix marks the ACL entries that get scripted. User-level
// grants are tied to logins that may not exist on the target; group grants
// replay cleanly.
const groupGranteePrefix = "group "

type aclEntry struct {
	grantee    string
	privileges []string
}

// parseACL splits a raw catalog ACL string into group entries.
//
// The catalog reader delivers ACLs as one "grantee=codes/grantor" entry per
// line. Array braces and entry quoting left over from the catalog's array
// form are tolerated and stripped.
func parseACL(acl string) []aclEntry {
	var entries []aclEntry
	for _, line := range strings.Split(acl, "\n") {
		line = strings.Trim(strings.TrimSpace(line), `{}"`)
		if line == "" {
			continue
		}
		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		grantee := line[:eq]
		if !strings.HasPrefix(grantee, groupGranteePrefix) {
			continue
		}
		codes := line[eq+1:]
		if slash := strings.Index(codes, "/"); slash >= 0 {
			codes = codes[:slash]
		}
		var privs []string
		for i := 0; i < len(codes); i++ {
			if name, ok := privilegeNames[codes[i]]; ok {
				privs = append(privs, name)
			}
		}
		if len(privs) == 0 {
			continue
		}
		entries = append(entries, aclEntry{grantee: grantee, privileges: privs})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].grantee < entries[j].grantee
	})
	return entries
}

// Grants renders one GRANT statement per group entry of an ACL, ordered by
// grantee name. objectClause is the full ON target, e.g. "public.sales",
// "SCHEMA public" or `DATABASE :"dbname"`. Returns the empty string when the
// ACL holds no scriptable entries.
func Grants(acl, objectClause string) string {
	entries := parseACL(acl)
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		name := strings.TrimPrefix(e.grantee, groupGranteePrefix)
		b.WriteString("GRANT ")
		b.WriteString(strings.Join(e.privileges, ", "))
		b.WriteString(" ON ")
		b.WriteString(objectClause)
		b.WriteString(" TO GROUP ")
		b.WriteString(q(name))
		b.WriteString(";\n")
	}
	return b.String()
}
