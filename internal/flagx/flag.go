// Package flagx helps components parse only their own command-line flags
// without tripping over flags meant for someone else (the Go test runner,
// other tools in the same process).
package flagx

import "strings"

// FilterArgs keeps only the allowed flags, and their values, from args.
//
// Two shapes are recognized: a flag with its value as the next argument
// ("-d dsn") and the combined form ("-d=dsn" or "--database=dsn"). Anything
// not in allowedFlags is dropped, so the returned slice is safe to hand to
// flag.FlagSet.Parse.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// a following non-flag argument is this flag's value
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
