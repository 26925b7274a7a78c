// Package commands implements the urlpdfprinter CLI.
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	urlpdf "github.com/porticus-lab/go-url-pdf"
	"github.com/porticus-lab/go-url-pdf/internal/logger"
)

// Seams replaced in tests.
var (
	outputFs afero.Fs = afero.NewOsFs()
	printURL          = urlpdf.PrintURL
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "urlpdfprinter",
		Short: "Print a web page to PDF with headless Chrome",
		Long: `urlpdfprinter loads a page in headless Chrome and prints it to a PDF file.

Header and footer may be literal HTML or an http(s) URL whose body is used
as the template. Authentication is a JSON object: {"type":0,...cookie
fields} sets a cookie, {"type":1,"value":"Bearer ..."} sends an
Authorization header.

Examples:
  # Print a page
  urlpdfprinter -c https://example.com -o /tmp/out/page.pdf

  # Wait for the report to render and add a footer
  urlpdfprinter -c https://app.example.com/report -o report.pdf \
      -s "#report.ready" -f '<div style="font-size:8px">Confidential</div>'

  # Authenticate with a session cookie
  urlpdfprinter -c https://app.example.com -o app.pdf \
      -a '{"type":0,"name":"session","value":"abc123"}'`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initConfig(v)
			logger.Init(logger.Options{
				Debug: v.GetBool("debug"),
				Quiet: v.GetBool("quiet"),
				JSON:  v.GetBool("log_json"),
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrint(cmd, v)
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.String("config", "", "config file (default $HOME/.urlpdfprinter.yaml)")
	pflags.Bool("debug", false, "enable debug logging")
	pflags.BoolP("quiet", "q", false, "only log errors")
	pflags.Bool("log-json", false, "log as JSON")
	addSettingsFlags(pflags, v)

	flags := cmd.Flags()
	flags.StringP("content_url", "c", "", "the url of the page to print (required)")
	flags.StringP("out_dir", "o", "", "the path the PDF will be written to (required)")
	flags.StringP("footer", "f", "", "the html or url of the footer")
	flags.StringP("header", "h", "", "the html or url of the header")
	flags.StringP("auth", "a", "", "the auth object as JSON")
	flags.StringP("selector", "s", "", "the css selector awaited before printing commences")
	_ = cmd.MarkFlagRequired("content_url")
	_ = cmd.MarkFlagRequired("out_dir")

	cmd.AddCommand(newConfigCmd(v), newInspectCmd(), newVersionCmd())
	return cmd
}

func initConfig(v *viper.Viper) {
	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".urlpdfprinter")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("URLPDF")
	v.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()
}

// flagKey maps a flag name to its viper key.
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func runPrint(cmd *cobra.Command, v *viper.Viper) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	flags := cmd.Flags()
	contentURL, _ := flags.GetString("content_url")
	outPath, _ := flags.GetString("out_dir")
	footer, _ := flags.GetString("footer")
	header, _ := flags.GetString("header")
	authPayload, _ := flags.GetString("auth")
	selector, _ := flags.GetString("selector")

	req := urlpdf.URLRequest{
		URL:      contentURL,
		Output:   outPath,
		Header:   header,
		Footer:   footer,
		Selector: selector,
	}
	if authPayload != "" {
		auth, err := urlpdf.ParseAuth(authPayload)
		if err != nil {
			return err
		}
		req.Auth = auth
	}

	s, err := loadSettings(v)
	if err != nil {
		return err
	}
	opts, err := s.options(outputFs)
	if err != nil {
		return err
	}

	logger.Debug("print starting",
		"url", contentURL,
		"output", outPath,
		"selector", selector,
		"auth", authPayload != "")

	if err := printURL(ctx, req, opts...); err != nil {
		return err
	}

	msg := "PDF print successful: " + outPath
	if fi, err := outputFs.Stat(outPath); err == nil {
		msg += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(fi.Size())))
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
