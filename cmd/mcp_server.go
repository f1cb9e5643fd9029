package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/uiproof/uiproof/internal/a11y"
	"github.com/uiproof/uiproof/internal/capture"
	"github.com/uiproof/uiproof/internal/config"
	"github.com/uiproof/uiproof/internal/golden"
	"github.com/uiproof/uiproof/internal/imagediff"
	"github.com/uiproof/uiproof/internal/matrix"
	"github.com/uiproof/uiproof/internal/semantic"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the golden cache.
type mcpServer struct {
	cache *goldenCache
	mcp   *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all uiproof tools.
func newMCPServer(cfg MCPConfig) *mcpServer {
	s := &mcpServer{
		cache: newGoldenCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"uiproof",
		"1.0.0",
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// compare_images
	s.mcp.AddTool(
		mcp.NewTool("compare_images",
			mcp.WithDescription("Compare two PNG images pixel by pixel and report the difference ratio and differing regions"),
			mcp.WithString("actual", mcp.Description("Path to the actual image"), mcp.Required()),
			mcp.WithString("expected", mcp.Description("Path to the expected image"), mcp.Required()),
			mcp.WithNumber("threshold", mcp.Description("Maximum matching difference ratio (default 0.01)")),
			mcp.WithNumber("pixel-tolerance", mcp.Description("Per-channel delta 0-255 before a pixel differs (default 0)")),
			mcp.WithString("diff-out", mcp.Description("Write an annotated diff visualization to this path")),
		),
		s.handleCompareImages,
	)

	// check_golden
	s.mcp.AddTool(
		mcp.NewTool("check_golden",
			mcp.WithDescription("Check a capture against the stored golden for a test name and device/theme configuration. Records a new golden when none exists unless strict is set."),
			mcp.WithString("image", mcp.Description("Path to the capture PNG"), mcp.Required()),
			mcp.WithString("test", mcp.Description("Logical test name"), mcp.Required()),
			mcp.WithString("golden-dir", mcp.Description("Golden store root (default: goldens)")),
			mcp.WithString("size", mcp.Description("Screen size: small, normal, large, xlarge")),
			mcp.WithString("density", mcp.Description("Pixel density: mdpi, hdpi, xhdpi, xxhdpi")),
			mcp.WithBoolean("dark", mcp.Description("Dark theme")),
			mcp.WithString("font-scale", mcp.Description("Font scale: small, normal, large, xlarge")),
			mcp.WithBoolean("high-contrast", mcp.Description("High-contrast theme")),
			mcp.WithBoolean("strict", mcp.Description("Fail on missing golden instead of recording")),
			mcp.WithBoolean("update", mcp.Description("Overwrite the golden with this capture")),
			mcp.WithNumber("threshold", mcp.Description("Maximum matching difference ratio (default 0.01)")),
		),
		s.handleCheckGolden,
	)

	// verify_accessibility
	s.mcp.AddTool(
		mcp.NewTool("verify_accessibility",
			mcp.WithDescription("Verify a semantic tree fixture against an accessibility policy preset and report violations"),
			mcp.WithString("tree", mcp.Description("Path to the semantic tree YAML fixture"), mcp.Required()),
			mcp.WithString("preset", mcp.Description("Policy preset: wcag-aa, elderly, relaxed (default wcag-aa)")),
			mcp.WithNumber("px-per-dp", mcp.Description("Pixels per density-independent unit (default 1.0)")),
		),
		s.handleVerifyAccessibility,
	)

	// check_contrast
	s.mcp.AddTool(
		mcp.NewTool("check_contrast",
			mcp.WithDescription("Compute the WCAG contrast ratio between two hex colors and check it against the applicable minimum"),
			mcp.WithString("foreground", mcp.Description("Foreground color, e.g. #1565C0"), mcp.Required()),
			mcp.WithString("background", mcp.Description("Background color, e.g. #FFFFFF"), mcp.Required()),
			mcp.WithBoolean("large", mcp.Description("Apply the large-text minimum (3.0:1)")),
			mcp.WithNumber("min", mcp.Description("Explicit minimum ratio")),
		),
		s.handleCheckContrast,
	)

	// generate_matrix
	s.mcp.AddTool(
		mcp.NewTool("generate_matrix",
			mcp.WithDescription("Generate the device/theme test matrix with deterministic test names"),
			mcp.WithString("base", mcp.Description("Base test name"), mcp.Required()),
			mcp.WithString("sweep", mcp.Description("Matrix kind: full, a11y, font, contrast (default full)")),
			mcp.WithString("size", mcp.Description("Fixed device size for sweeps")),
			mcp.WithString("density", mcp.Description("Fixed device density for sweeps")),
			mcp.WithBoolean("dark", mcp.Description("Fixed dark-mode flag for sweeps")),
		),
		s.handleGenerateMatrix,
	)
}

// toolYAML marshals v for an MCP text result.
func toolYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("marshal result: %v", err)
	}
	return string(b)
}

func (s *mcpServer) handleCompareImages(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	actual, err := loadPNG(StringParam(params, "actual", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	expected, err := loadPNG(StringParam(params, "expected", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := imagediff.DefaultOptions()
	opts.Threshold = FloatParam(params, "threshold", opts.Threshold)
	tolerance := IntParam(params, "pixel-tolerance", int(opts.PixelTolerance))
	if tolerance < 0 || tolerance > 255 {
		return mcp.NewToolResultError(fmt.Sprintf("pixel-tolerance must be in [0,255], got %d", tolerance)), nil
	}
	opts.PixelTolerance = uint8(tolerance)

	result := imagediff.Compare(actual, expected, opts)
	report := CompareReport{
		Match:       result.Match,
		DiffRatio:   result.DiffRatio,
		RegionCount: result.RegionCount(),
		Message:     result.Message,
	}

	if diffOut := StringParam(params, "diff-out", ""); diffOut != "" {
		diff := imagediff.DiffImage(actual, expected, opts.PixelTolerance)
		imagediff.Annotate(diff, result.DiffRegions)
		if err := savePNG(diffOut, diff); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		report.DiffImage = diffOut
	}

	return mcp.NewToolResultText(toolYAML(report)), nil
}

// configFromParams builds a CaptureConfig from MCP tool arguments.
func configFromParams(params map[string]interface{}) (config.CaptureConfig, error) {
	var cfg config.CaptureConfig

	size, err := config.ParseScreenSize(StringParam(params, "size", "normal"))
	if err != nil {
		return cfg, err
	}
	density, err := config.ParseDensity(StringParam(params, "density", "mdpi"))
	if err != nil {
		return cfg, err
	}
	scale, err := config.ParseFontScale(StringParam(params, "font-scale", "normal"))
	if err != nil {
		return cfg, err
	}

	cfg.Device = config.DeviceConfig{Size: size, Density: density}
	cfg.Theme = config.ThemeConfig{
		DarkMode:     BoolParam(params, "dark", false),
		FontScale:    scale,
		HighContrast: BoolParam(params, "high-contrast", false),
	}
	return cfg, nil
}

func (s *mcpServer) handleCheckGolden(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	testName := StringParam(params, "test", "")
	cfg, err := configFromParams(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	store := golden.NewStore(StringParam(params, "golden-dir", "goldens"))

	renderer := &capture.FixtureRenderer{ImagePath: StringParam(params, "image", "")}
	img, err := capture.NewService(renderer).CaptureImage(nil, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome := ComparisonMCPResult{Test: testName, Path: store.Path(testName, cfg)}

	if BoolParam(params, "update", false) || !store.Exists(testName, cfg) {
		if BoolParam(params, "strict", false) && !BoolParam(params, "update", false) {
			return mcp.NewToolResultError(fmt.Sprintf("golden not found: %s (strict mode)", outcome.Path)), nil
		}
		if err := store.Save(testName, img, cfg); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.cache.invalidate(testName, cfg)
		outcome.OK = true
		outcome.GoldenCreated = true
		return mcp.NewToolResultText(toolYAML(outcome)), nil
	}

	expected, err := s.cache.load(store, testName, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := imagediff.DefaultOptions()
	opts.Threshold = FloatParam(params, "threshold", opts.Threshold)
	result := imagediff.Compare(img, expected, opts)

	outcome.OK = result.Match
	outcome.DiffRatio = result.DiffRatio
	outcome.Regions = result.RegionCount()
	outcome.Message = result.Message
	if !result.Match {
		return mcp.NewToolResultError(toolYAML(outcome)), nil
	}
	return mcp.NewToolResultText(toolYAML(outcome)), nil
}

// ComparisonMCPResult is the check_golden tool's result shape.
type ComparisonMCPResult struct {
	OK            bool    `yaml:"ok"                       json:"ok"`
	Test          string  `yaml:"test"                     json:"test"`
	Path          string  `yaml:"path"                     json:"path"`
	GoldenCreated bool    `yaml:"golden_created,omitempty" json:"golden_created,omitempty"`
	DiffRatio     float64 `yaml:"diff_ratio"               json:"diff_ratio"`
	Regions       int     `yaml:"regions,omitempty"        json:"regions,omitempty"`
	Message       string  `yaml:"message,omitempty"        json:"message,omitempty"`
}

func (s *mcpServer) handleVerifyAccessibility(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	treePath := StringParam(params, "tree", "")
	tree, err := semantic.LoadTree(treePath)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	policy, ok := config.ParsePreset(StringParam(params, "preset", "wcag-aa"))
	if !ok {
		return mcp.NewToolResultError("unknown preset (use wcag-aa, elderly, or relaxed)"), nil
	}

	verifier := a11y.NewVerifier(policy)
	if v := FloatParam(params, "px-per-dp", 1.0); v > 0 {
		verifier.PxPerDp = v
	}

	result := verifier.Verify(treePath, tree)
	if !result.Compliant {
		return mcp.NewToolResultError(toolYAML(result)), nil
	}
	return mcp.NewToolResultText(toolYAML(result)), nil
}

func (s *mcpServer) handleCheckContrast(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	fg, err := a11y.ParseHex(StringParam(params, "foreground", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	bg, err := a11y.ParseHex(StringParam(params, "background", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	min := FloatParam(params, "min", 0)
	if min <= 0 {
		min = a11y.NormalTextRatio
		if BoolParam(params, "large", false) {
			min = a11y.LargeTextRatio
		}
	}

	ratio := a11y.ContrastRatio(fg, bg)
	report := ContrastReport{
		Foreground: fg.String(),
		Background: bg.String(),
		Ratio:      a11y.FormatRatio(ratio),
		Minimum:    min,
		Pass:       ratio >= min,
	}
	if !report.Pass {
		return mcp.NewToolResultError(toolYAML(report)), nil
	}
	return mcp.NewToolResultText(toolYAML(report)), nil
}

func (s *mcpServer) handleGenerateMatrix(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	base := StringParam(params, "base", "screen")
	cfg, err := configFromParams(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var cases []matrix.Case
	switch sweep := StringParam(params, "sweep", "full"); sweep {
	case "full":
		cases = matrix.Full(base, matrix.DefaultDevices(), matrix.DefaultThemes())
	case "a11y":
		cases = matrix.AccessibilitySweep(base, cfg.Device, cfg.Theme)
	case "font":
		cases = matrix.FontScaleSweep(base, cfg.Device, cfg.Theme.DarkMode)
	case "contrast":
		cases = matrix.HighContrastSweep(base, cfg.Device, cfg.Theme.DarkMode)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown sweep: %q", sweep)), nil
	}

	entries := make([]MatrixEntry, 0, len(cases))
	for _, c := range cases {
		entry := MatrixEntry{
			Name:   c.Name,
			Device: c.Config.Device.Token(),
			Theme:  c.Config.Theme.Token(),
		}
		if c.Accessibility != nil {
			entry.Policy = config.PresetToken(*c.Accessibility)
		}
		entries = append(entries, entry)
	}
	return mcp.NewToolResultText(toolYAML(entries)), nil
}
