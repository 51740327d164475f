package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tether-ai/tether/internal/config/store"
)

// newConfigCommand creates the config command group. Values live in the
// local settings database and act as defaults for the global flags.
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:           "config",
		Short:         "Client configuration commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	getCmd := &cobra.Command{
		Use:           "get [key]",
		Short:         "Print a stored configuration value",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          configGet,
	}

	setCmd := &cobra.Command{
		Use:           "set [key] [value]",
		Short:         "Store a configuration value",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          configSet,
	}

	unsetCmd := &cobra.Command{
		Use:           "unset [key]",
		Short:         "Remove a stored configuration value",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          configUnset,
	}

	listCmd := &cobra.Command{
		Use:           "list",
		Short:         "Print all stored configuration values",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          configList,
	}

	configCmd.AddCommand(getCmd, setCmd, unsetCmd, listCmd)
	return configCmd
}

// validateSettingKey guards against typos; only keys the CLI reads can be
// stored.
func validateSettingKey(key string) error {
	for _, known := range cliSettingKeys {
		if key == known {
			return nil
		}
	}
	return fmt.Errorf("unknown key %q (valid keys: %s)", key, strings.Join(cliSettingKeys, ", "))
}

// withStore opens the settings database for the duration of one command.
func withStore(fn func(ctx context.Context, st *store.Store) error) error {
	st, err := store.Open(store.Options{})
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return fn(ctx, st)
}

func configGet(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	key := args[0]
	if err := validateSettingKey(key); err != nil {
		return out.Error("Invalid configuration key", err)
	}

	return withStore(func(ctx context.Context, st *store.Store) error {
		value, err := st.GetSetting(ctx, key)
		if store.IsNotFound(err) {
			return out.Error(fmt.Sprintf("Key %s is not set", key), err)
		}
		if err != nil {
			return out.Error("Failed to read configuration", err)
		}
		return out.Render(CommandResult{
			Data: map[string]interface{}{"key": key, "value": value},
			HumanReadable: func() error {
				fmt.Println(value)
				return nil
			},
		})
	})
}

func configSet(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	key, value := args[0], args[1]
	if err := validateSettingKey(key); err != nil {
		return out.Error("Invalid configuration key", err)
	}

	return withStore(func(ctx context.Context, st *store.Store) error {
		if err := st.SaveSettings(ctx, map[string]string{key: value}); err != nil {
			return out.Error("Failed to save configuration", err)
		}
		return out.Success(fmt.Sprintf("Set %s", key), map[string]interface{}{
			"key":   key,
			"value": value,
		})
	})
}

func configUnset(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)
	key := args[0]
	if err := validateSettingKey(key); err != nil {
		return out.Error("Invalid configuration key", err)
	}

	return withStore(func(ctx context.Context, st *store.Store) error {
		if err := st.DeleteSettings(ctx, key); err != nil {
			return out.Error("Failed to update configuration", err)
		}
		return out.Success(fmt.Sprintf("Unset %s", key), map[string]interface{}{"key": key})
	})
}

func configList(cmd *cobra.Command, args []string) error {
	out := newOutputFormatter(cmd)

	return withStore(func(ctx context.Context, st *store.Store) error {
		values, err := st.LoadSettings(ctx)
		if err != nil {
			return out.Error("Failed to read configuration", err)
		}

		data := make(map[string]interface{}, len(values))
		for k, v := range values {
			data[k] = v
		}
		return out.Render(CommandResult{
			Data: data,
			HumanReadable: func() error {
				if len(values) == 0 {
					fmt.Println("No configuration set")
					return nil
				}
				keys := make([]string, 0, len(values))
				for k := range values {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Printf("%s = %s\n", k, values[k])
				}
				return nil
			},
		})
	})
}
