// Package flagx extracts the subset of command-line arguments a component
// understands, so several flag sets can read os.Args without tripping over
// each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the arguments from args that belong to the given flags.
//
// valued flags take a value, either as the next argument (-d diary.db) or
// joined with '=' (-d=diary.db). switches are boolean flags and never
// consume the following argument (-r, -r=false). Everything else is dropped.
// The result is never nil.
func FilterArgs(args []string, valued []string, switches []string) []string {
	kind := make(map[string]bool, len(valued)+len(switches))
	for _, f := range valued {
		kind[f] = true
	}
	for _, f := range switches {
		kind[f] = false
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := kind[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		takesValue, ok := kind[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if takesValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath returns the JSON config file named by -c or -config in args,
// or "" when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}, nil))

	return path
}
