// Package catalog reads the source database's system catalog into the schema
// model and streams table rows for the bulk data export.
package catalog

// Catalog queries. ACLs are flattened to one entry per line so the renderer
// never parses array syntax; descriptions and ACLs are coalesced to empty
// strings to keep scanning NULL-free.

const databaseQuery = `
SELECT d.datname,
       pg_get_userbyid(d.datdba),
       coalesce(array_to_string(d.datacl, chr(10)), ''),
       coalesce(sd.description, '')
FROM pg_database d
LEFT JOIN pg_shdescription sd ON sd.objoid = d.oid
WHERE d.datname = current_database()`

const groupsQuery = `
SELECT groname
FROM pg_group
ORDER BY groname`

const schemasQuery = `
SELECT n.nspname,
       pg_get_userbyid(n.nspowner),
       coalesce(array_to_string(n.nspacl, chr(10)), ''),
       coalesce(d.description, '')
FROM pg_namespace n
LEFT JOIN pg_description d ON d.objoid = n.oid
WHERE n.nspname NOT LIKE 'pg\_%'
  AND n.nspname <> 'information_schema'
ORDER BY n.nspname`

// reldiststyle: 0 = EVEN, 1 = KEY, 8 = ALL.
const tablesQuery = `
SELECT n.nspname,
       c.relname,
       pg_get_userbyid(c.relowner),
       coalesce(array_to_string(c.relacl, chr(10)), ''),
       coalesce(d.description, ''),
       c.reldiststyle,
       c.reltuples::bigint
FROM pg_class c
JOIN pg_namespace n ON n.oid = c.relnamespace
LEFT JOIN pg_description d ON d.objoid = c.oid AND d.objsubid = 0
WHERE c.relkind = 'r'
  AND n.nspname NOT LIKE 'pg\_%'
  AND n.nspname <> 'information_schema'
ORDER BY n.nspname, c.relname`

const columnsQuery = `
SELECT n.nspname,
       c.relname,
       a.attname,
       format_type(a.atttypid, a.atttypmod),
       NOT a.attnotnull,
       coalesce(ad.adsrc, ''),
       coalesce(format_encoding(a.attencodingtype), ''),
       a.attisdistkey,
       a.attsortkeyord,
       coalesce(d.description, '')
FROM pg_attribute a
JOIN pg_class c ON c.oid = a.attrelid
JOIN pg_namespace n ON n.oid = c.relnamespace
LEFT JOIN pg_attrdef ad ON ad.adrelid = a.attrelid AND ad.adnum = a.attnum
LEFT JOIN pg_description d ON d.objoid = a.attrelid AND d.objsubid = a.attnum
WHERE c.relkind IN ('r', 'v')
  AND a.attnum > 0
  AND NOT a.attisdropped
  AND n.nspname NOT LIKE 'pg\_%'
  AND n.nspname <> 'information_schema'
ORDER BY n.nspname, c.relname, a.attnum`

// conkey is flattened to a comma-separated string; pre-dropped-column
// positions come through unchanged so constraint resolution stays positional.
const constraintsQuery = `
SELECT n.nspname,
       c.relname,
       con.conname,
       con.contype,
       pg_get_constraintdef(con.oid),
       coalesce(array_to_string(con.conkey, ','), ''),
       coalesce(d.description, '')
FROM pg_constraint con
JOIN pg_class c ON c.oid = con.conrelid
JOIN pg_namespace n ON n.oid = c.relnamespace
LEFT JOIN pg_description d ON d.objoid = con.oid
WHERE con.contype IN ('p', 'u', 'f')
  AND n.nspname NOT LIKE 'pg\_%'
  AND n.nspname <> 'information_schema'
ORDER BY n.nspname, c.relname, con.conname`

const viewsQuery = `
SELECT n.nspname,
       c.relname,
       pg_get_userbyid(c.relowner),
       coalesce(array_to_string(c.relacl, chr(10)), ''),
       coalesce(d.description, ''),
       pg_get_viewdef(c.oid, true)
FROM pg_class c
JOIN pg_namespace n ON n.oid = c.relnamespace
LEFT JOIN pg_description d ON d.objoid = c.oid AND d.objsubid = 0
WHERE c.relkind = 'v'
  AND n.nspname NOT LIKE 'pg\_%'
  AND n.nspname <> 'information_schema'
ORDER BY n.nspname, c.relname`
