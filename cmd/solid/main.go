package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/yousefAhmed-22/SOLID/internal/adapters/log"
	"github.com/yousefAhmed-22/SOLID/internal/cliconfig"
	"github.com/yousefAhmed-22/SOLID/internal/domain"
	"github.com/yousefAhmed-22/SOLID/pkg/checkout"
	"github.com/yousefAhmed-22/SOLID/pkg/log"
)

const longHelp = `Run payments through a small SOLID component graph.

A payment applies a discount policy, charges a payment method, sends a
notification and records a log line. Every piece is chosen by configuration
and can be swapped without touching the others.

Configuration is read from $HOME/.solid/config.toml, then SOLID_* environment
variables, then flags; later sources win.`

var exampleUsage = strings.TrimSpace(`
  solid pay --amount 100 --discount percentage
  solid pay --amount 100 --method cash --channel sms
  solid validate-card --card 4111111111111111
  solid process --amount 100
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return checkout.Version + "-dev"
}

// cli holds state shared by the subcommands.
type cli struct {
	cfg      cliconfig.Config
	cfgPath  string
	amount   string
	log      zerolog.Logger
	registry *prometheus.Registry
}

func main() {
	c := &cli{
		cfg: cliconfig.DefaultConfig(),
		log: cliconfig.Logger(os.Stderr),
	}

	root := c.rootCommand()
	if err := root.Execute(); err != nil {
		c.log.Error().Err(err).Msg("solid")
		os.Exit(1)
	}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "solid",
		Short:             "Run payments through a small SOLID component graph",
		Long:              longHelp,
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !c.cfg.Metrics {
				return nil
			}
			return dumpMetrics(cmd.ErrOrStderr(), c.registry)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.solid/config.toml)")
	pf.StringVar(&c.cfg.Discount, "discount", c.cfg.Discount, "discount policy: none, percentage, fixed")
	pf.Float64Var(&c.cfg.Percentage, "percentage", c.cfg.Percentage, "multiplier used by the percentage discount")
	pf.Float64Var(&c.cfg.FixedOff, "fixed-off", c.cfg.FixedOff, "amount taken off by the fixed discount")
	pf.StringVar(&c.cfg.Method, "method", c.cfg.Method, "payment method: credit_card, cash")
	pf.StringVar(&c.cfg.Channel, "channel", c.cfg.Channel, "notification channel: email, sms")
	pf.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "diagnostic log level")
	pf.StringVar(&c.cfg.PaymentLog, "payment-log", c.cfg.PaymentLog, "payment log sink: console, structured")
	pf.BoolVar(&c.cfg.Metrics, "metrics", c.cfg.Metrics, "print prometheus metrics to stderr when done")

	root.AddCommand(c.payCommand(), c.validateCardCommand(), c.processCommand())
	return root
}

func (c *cli) payCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Apply the discount, pay, notify and log",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseAmount(c.amount)
			if err != nil {
				return err
			}
			co, err := c.checkout(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			receipt, err := co.Pay(amount)
			if err != nil {
				return err
			}
			c.log.Debug().
				Str("payment_id", receipt.ID.String()).
				Str("discounted", receipt.Discounted().StringFixed(2)).
				Msg("payment complete")
			return nil
		},
	}
	cmd.Flags().StringVar(&c.amount, "amount", "", "amount to pay, e.g. 100 or 19.99")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func (c *cli) validateCardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate-card",
		Short: "Validate a card number with the configured payment method",
		RunE: func(cmd *cobra.Command, args []string) error {
			co, err := c.checkout(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return co.ValidateCard(c.cfg.CardNumber)
		},
	}
	cmd.Flags().StringVar(&c.cfg.CardNumber, "card", "", "card number to validate")
	return cmd
}

func (c *cli) processCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Announce a payment being processed, without charging it",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseAmount(c.amount)
			if err != nil {
				return err
			}
			co, err := c.checkout(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return co.Process(amount)
		},
	}
	cmd.Flags().StringVar(&c.amount, "amount", "", "amount to process")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

// loadConfig layers the config file and environment under explicitly set
// flags, then validates the result.
func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&c.cfg, fc, changed)
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.log = c.log.Level(c.cfg.Level())

	logCfg := c.cfg
	if logCfg.CardNumber != "" {
		logCfg.CardNumber = "*****"
	}
	c.log.Debug().Interface("config", logCfg).Msg("configuration")

	c.registry = prometheus.NewRegistry()
	return nil
}

// checkout builds the composition root from the loaded configuration.
func (c *cli) checkout(out io.Writer) (*checkout.Checkout, error) {
	logger := log.NewZerologAdapterWithLogger(c.log)

	opts := []checkout.Option{
		checkout.WithOutput(out),
		checkout.WithLogger(logger),
	}
	if c.cfg.PaymentLog == cliconfig.PaymentLogStructured {
		opts = append(opts, checkout.WithPaymentLogger(logAdapter.NewStructuredPaymentLogger(logger)))
	}
	if c.cfg.Metrics {
		opts = append(opts, checkout.WithMetrics(c.registry))
	}

	return checkout.New(checkout.Config{
		Discount:   checkout.DiscountKind(c.cfg.Discount),
		Percentage: decimal.NewFromFloat(c.cfg.Percentage),
		FixedOff:   decimal.NewFromFloat(c.cfg.FixedOff),
		Method:     checkout.MethodKind(c.cfg.Method),
		Channel:    checkout.ChannelKind(c.cfg.Channel),
	}, opts...)
}

func dumpMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
