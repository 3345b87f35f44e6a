package probes

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// nodeBuiltinModules holds the Node.js built-in modules as listed by
// require("repl").builtinModules. It is never modified.
var nodeBuiltinModules = toSet(
	"assert", "assert/strict", "async_hooks", "buffer", "child_process",
	"cluster", "console", "constants", "crypto", "dgram", "diagnostics_channel",
	"dns", "dns/promises", "domain", "events", "fs", "fs/promises", "http",
	"http2", "https", "inspector", "inspector/promises", "module", "net", "os",
	"path", "path/posix", "path/win32", "perf_hooks", "process", "punycode",
	"querystring", "readline", "readline/promises", "repl", "stream",
	"stream/consumers", "stream/promises", "stream/web", "string_decoder",
	"sys", "timers", "timers/promises", "tls", "trace_events", "tty", "url",
	"util", "util/types", "v8", "vm", "wasi", "worker_threads", "zlib",
)

func toSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// IsBuiltinModule reports whether name is exactly the name of a Node.js
// built-in module. Prefixed names such as "node:fs" are not matched.
func IsBuiltinModule(name string) bool {
	_, ok := nodeBuiltinModules[name]
	return ok
}

// BuiltinModules returns the sorted names of the Node.js built-in modules.
func BuiltinModules() []string {
	names := maps.Keys(nodeBuiltinModules)
	slices.Sort(names)
	return names
}
