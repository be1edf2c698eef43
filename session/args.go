package session

import "strings"

// LaunchFlag asks the program to relaunch itself inside a nested compositor.
// The flag package accepts it with one or two dashes.
const LaunchFlag = "kwin"

// FilterArgs drops every form of the launch flag so the nested session does
// not try to launch yet another session. Arguments are matched one by one
// without knowing which flags take values, so a value spelled like the flag
// ("-c --kwin") is dropped as well and leaves its flag without a value.
func FilterArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if isLaunchFlag(arg) {
			continue
		}
		out = append(out, arg)
	}
	return out
}

func isLaunchFlag(arg string) bool {
	name := strings.TrimPrefix(arg, "-")
	name = strings.TrimPrefix(name, "-")
	if len(name) == len(arg) {
		return false
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name == LaunchFlag
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

// QuoteArgs double-quotes every argument and joins them with single spaces.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = `"` + quoteEscaper.Replace(arg) + `"`
	}
	return strings.Join(quoted, " ")
}
