package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/domain"
	resolution_setup "github.com/x-xyz/resolution/stores/resolution/setup"
)

type options struct {
	domain   string
	keys     []string
	owner    bool
	resolver bool
	namehash bool
	config   string
}

func addFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.domain, "domain", "d", "", "domain to resolve")
	fs.StringSliceVarP(&o.keys, "key", "k", nil, "record keys, repeatable")
	fs.BoolVar(&o.owner, "owner", false, "print the owner")
	fs.BoolVar(&o.resolver, "resolver", false, "print the resolver")
	fs.BoolVar(&o.namehash, "namehash", false, "print the namehash")
	fs.StringVarP(&o.config, "config", "c", "", "yaml config, public nodes are used when empty")
	fs.Bool("debug", false, "debug logging")
}

func newCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a blockchain domain on ZNS, CNS, ENS or RNS",
		Long: `resolve prints the resolution of a domain as JSON.

Without --key, --owner, --resolver or --namehash the full resolution is
printed. Otherwise only the selected parts are.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if o.config != "" {
				v.SetConfigType("yaml")
				v.SetConfigFile(o.config)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}
			if err := v.BindPFlag("debug", cmd.Flags().Lookup("debug")); err != nil {
				return err
			}
			log.SetDebug(v.GetBool("debug"))

			c := ctx.Background()
			uc, err := resolution_setup.New(c, v)
			if err != nil {
				return err
			}
			out, err := run(c, uc, o)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	addFlags(cmd.Flags(), o)
	_ = cmd.MarkFlagRequired("domain")
	return cmd
}

func run(c ctx.Ctx, uc domain.ResolutionUsecase, o *options) (interface{}, error) {
	if len(o.keys) == 0 && !o.owner && !o.resolver && !o.namehash {
		return uc.Resolve(c, o.domain)
	}

	out := map[string]interface{}{}
	if o.namehash {
		hash, err := uc.Namehash(o.domain)
		if err != nil {
			return nil, err
		}
		out["namehash"] = hash
	}
	if o.owner {
		owner, err := uc.Owner(c, o.domain)
		if err != nil {
			return nil, err
		}
		out["owner"] = owner
	}
	if o.resolver {
		resolver, err := uc.Resolver(c, o.domain)
		if err != nil {
			return nil, err
		}
		out["resolver"] = resolver
	}
	if len(o.keys) > 0 {
		values, err := uc.Records(c, o.domain, o.keys)
		if err != nil {
			return nil, err
		}
		out["records"] = values
	}
	return out, nil
}

func main() {
	defer log.Sync()
	if err := newCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
