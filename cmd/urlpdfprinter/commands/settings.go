package commands

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	urlpdf "github.com/porticus-lab/go-url-pdf"
)

// settings are the printer options that may come from flags, URLPDF_*
// environment variables or the config file.
type settings struct {
	ChromePath          string        `mapstructure:"chrome_path" yaml:"chrome_path"`
	RemoteURL           string        `mapstructure:"remote_url" yaml:"remote_url"`
	AutoDownload        bool          `mapstructure:"auto_download" yaml:"auto_download"`
	NoSandbox           bool          `mapstructure:"no_sandbox" yaml:"no_sandbox"`
	IgnoreHTTPSErrors   bool          `mapstructure:"ignore_https_errors" yaml:"ignore_https_errors"`
	InsecureFetch       bool          `mapstructure:"insecure_fetch" yaml:"insecure_fetch"`
	LegacyTemplateOrder bool          `mapstructure:"legacy_template_order" yaml:"legacy_template_order"`
	Timeout             time.Duration `mapstructure:"timeout" yaml:"timeout"`
	NavigationTimeout   time.Duration `mapstructure:"navigation_timeout" yaml:"navigation_timeout"`
	SelectorTimeout     time.Duration `mapstructure:"selector_timeout" yaml:"selector_timeout"`
	FetchTimeout        time.Duration `mapstructure:"fetch_timeout" yaml:"fetch_timeout"`
	Paper               string        `mapstructure:"paper" yaml:"paper"`
	Landscape           bool          `mapstructure:"landscape" yaml:"landscape"`
	Margin              float64       `mapstructure:"margin" yaml:"margin"`
	Scale               float64       `mapstructure:"scale" yaml:"scale"`
}

// addSettingsFlags registers the printer flags on flags and binds each to
// its viper key.
func addSettingsFlags(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("chrome-path", "", "path to the Chrome/Chromium executable (default: auto-detect)")
	flags.String("remote-url", "", "DevTools websocket URL of a running browser to use instead of launching one")
	flags.Bool("auto-download", false, "download a compatible Chromium if none is configured")
	flags.Bool("no-sandbox", false, "disable the Chrome sandbox (needed when running as root)")
	flags.Bool("ignore-https-errors", false, "accept invalid TLS certificates on the printed page")
	flags.Bool("insecure-fetch", true, "skip TLS certificate verification when fetching header/footer URLs")
	flags.Bool("legacy-template-order", false, "use the footer as header template and the header as footer template")
	flags.Duration("timeout", 2*time.Minute, "maximum duration of the whole print (0 = none)")
	flags.Duration("navigation-timeout", 30*time.Second, "maximum duration of page navigation")
	flags.Duration("selector-timeout", 30*time.Second, "maximum wait for the readiness selector")
	flags.Duration("fetch-timeout", 30*time.Second, "maximum duration of a header/footer fetch")
	flags.String("paper", "letter", "paper size when the page sets no CSS @page size: a3, a4, a5, letter, legal, tabloid")
	flags.Bool("landscape", false, "landscape orientation for the fallback paper size")
	flags.Float64("margin", 0, "page margin in centimeters on all sides")
	flags.Float64("scale", 1, "rendering scale between 0.1 and 2")

	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(flagKey(f.Name), f)
	})
}

func loadSettings(v *viper.Viper) (settings, error) {
	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("reading settings: %w", err)
	}
	return s, nil
}

// options converts the settings into printer options writing to fs.
func (s settings) options(fs afero.Fs) ([]urlpdf.Option, error) {
	size, err := urlpdf.ParsePageSize(s.Paper)
	if err != nil {
		return nil, err
	}
	pg := urlpdf.PageConfig{
		Size:   size,
		Margin: urlpdf.UniformMargin(s.Margin),
		Scale:  s.Scale,
	}
	if s.Landscape {
		pg.Orientation = urlpdf.Landscape
	}

	opts := []urlpdf.Option{
		urlpdf.WithFs(fs),
		urlpdf.WithPageConfig(pg),
		urlpdf.WithInsecureFetch(s.InsecureFetch),
		urlpdf.WithTimeout(s.Timeout),
		urlpdf.WithNavigationTimeout(s.NavigationTimeout),
		urlpdf.WithSelectorTimeout(s.SelectorTimeout),
		urlpdf.WithFetchTimeout(s.FetchTimeout),
	}
	if s.ChromePath != "" {
		opts = append(opts, urlpdf.WithChromePath(s.ChromePath))
	}
	if s.RemoteURL != "" {
		opts = append(opts, urlpdf.WithRemoteURL(s.RemoteURL))
	}
	if s.AutoDownload {
		opts = append(opts, urlpdf.WithAutoDownload())
	}
	if s.NoSandbox {
		opts = append(opts, urlpdf.WithNoSandbox())
	}
	if s.IgnoreHTTPSErrors {
		opts = append(opts, urlpdf.WithIgnoreHTTPSErrors())
	}
	if s.LegacyTemplateOrder {
		opts = append(opts, urlpdf.WithLegacyTemplateOrder())
	}
	return opts, nil
}
