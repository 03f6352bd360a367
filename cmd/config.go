package cmd

import (
	"fmt"

	"github.com/NahomAnteneh/gitlite/internal/gitconfig"
	"github.com/NahomAnteneh/gitlite/internal/repo"
	"github.com/spf13/cobra"
)

// config is additive to the engine's command set (spec §4.7 lists no
// configuration command); it backs user.name/user.email used nowhere in
// commit records today but kept for parity with the ambient stack other
// Gitlite-shaped tools expose.
func init() {
	cmd := NewRepoCommand("config <section.key> [<value>]", "Get or set a repository setting", 1, func(r *repo.Repository, args []string) error {
		section, key, ok := splitConfigKey(args[0])
		if !ok {
			return fmt.Errorf("invalid config key %q, expected <section>.<key>", args[0])
		}

		cfg, err := gitconfig.Load(r.GitliteDir)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			value, ok := cfg.Get(section, key)
			if !ok {
				return fmt.Errorf("no value set for %s", args[0])
			}
			fmt.Println(value)
			return nil
		}

		cfg.Set(section, key, args[1])
		return cfg.Write()
	})
	cmd.Args = cobra.RangeArgs(1, 2)
	rootCmd.AddCommand(cmd)
}

func splitConfigKey(s string) (section, key string, ok bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
