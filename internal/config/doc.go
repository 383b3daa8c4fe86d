// Package config persists service definitions as YAML files under a single
// configuration directory and loads them back into catalog records.
//
// The on-disk layout is one file per service, <config-dir>/services/<name>.yaml,
// with filenames sanitized so arbitrary service names cannot escape the
// directory. Definitions are accepted in YAML or JSON; YAML input is
// normalized to JSON before unmarshalling so both forms share the records'
// json tags.
//
// The Watcher wraps fsnotify to trigger a catalog reload when definition
// files change on disk.
package config
