package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func settingsCmd(withRuntime runWrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read or change site settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [key]",
		Short: "Print one setting, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *Runtime) error {
			settings, err := rt.UseCases.Settings.GetSettings(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				value, ok := settings[args[0]]
				if !ok {
					return fmt.Errorf("unknown setting %q", args[0])
				}
				raw, err := json.Marshal(value)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(raw))
				return nil
			}

			keys := make([]string, 0, len(settings))
			for key := range settings {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				raw, err := json.Marshal(settings[key])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s = %s\n", boldText(key), raw)
			}
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `The value is read as JSON when it parses ("true", "42", '[...]'),
otherwise as a plain string.`,
		Example: `  cmsctl settings set maintenance_mode true
  cmsctl settings set site_name "JivIT Solutions"`,
		Args: cobra.ExactArgs(2),
		RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *Runtime) error {
			key, value := args[0], settingValue(args[1])
			if err := rt.UseCases.Settings.Import(cmd.Context(), map[string]json.RawMessage{key: value}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s\n", okMark, key, value)
			return nil
		}),
	})

	return cmd
}

// settingValue treats arg as JSON when valid and as a string otherwise.
func settingValue(arg string) json.RawMessage {
	if json.Valid([]byte(arg)) {
		return json.RawMessage(arg)
	}
	raw, _ := json.Marshal(arg)
	return raw
}
