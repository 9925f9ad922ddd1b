package repository

import templatedomain "github.com/smallbiznis/invoicegen/internal/invoicetemplate/domain"

const (
	sansStack    = "Arial, sans-serif"
	notesDefault = templatedomain.Color("#f9fafb")
)

// catalog holds one entry per template, in the order the gallery lists them.
var catalog = []templatedomain.Style{
	{
		ID:          templatedomain.TemplateProfessional,
		Label:       "Professional",
		Description: "Classic blue with clean layout",
		Palette: templatedomain.Palette{
			Primary: "#1e40af", Secondary: "#2563eb",
			HeaderBg: "#ffffff", HeaderText: "#1e40af",
			TableHeaderBg: "#f3f4f6", TableHeaderText: "#1e40af",
			Text: "#333333", LightText: "#666666",
			Border: "#e5e7eb", Accent: "#2563eb",
		},
		Typography: templatedomain.Typography{FontStack: sansStack, HeadingWeight: 700, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 3, NotesBg: notesDefault},
	},
	{
		ID:          templatedomain.TemplateModern,
		Label:       "Modern",
		Description: "Gradient header with rounded corners",
		Palette: templatedomain.Palette{
			Primary: "#667eea", Secondary: "#764ba2",
			HeaderBg: "#667eea", HeaderText: "#ffffff",
			TableHeaderBg: "#667eea", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#666666",
			Border: "#e5e7eb", Accent: "#764ba2",
		},
		Typography: templatedomain.Typography{FontStack: sansStack, HeadingWeight: 600, TitleTracking: 2, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, RadiusPx: 12, ZebraRows: true, NotesBg: "#fff8dc"},
	},
	{
		ID:          templatedomain.TemplateClassic,
		Label:       "Classic",
		Description: "Traditional serif fonts with formal styling",
		Palette: templatedomain.Palette{
			Primary: "#000000", Secondary: "#333333",
			HeaderBg: "#ffffff", HeaderText: "#000000",
			TableHeaderBg: "#000000", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#555555",
			Border: "#000000", Accent: "#000000",
		},
		Typography: templatedomain.Typography{FontStack: "Georgia, 'Times New Roman', serif", HeadingWeight: 700, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderRule: templatedomain.RuleDouble, RuleWidthPx: 4, NotesBg: "#f5f5f5"},
	},
	{
		ID:          templatedomain.TemplateMinimal,
		Label:       "Minimal",
		Description: "Ultra-clean with maximum whitespace",
		Palette: templatedomain.Palette{
			Primary: "#000000", Secondary: "#666666",
			HeaderBg: "#ffffff", HeaderText: "#000000",
			TableHeaderBg: "#ffffff", TableHeaderText: "#000000",
			Text: "#333333", LightText: "#999999",
			Border: "#eeeeee", Accent: "#000000",
		},
		Typography: templatedomain.Typography{FontStack: sansStack, HeadingWeight: 300, TitleTracking: 5, Uppercase: true, BaseFontSizePx: 11},
		Decoration: templatedomain.Decoration{HeaderRule: templatedomain.RuleNone, NotesBg: "#ffffff"},
	},
	{
		ID:          templatedomain.TemplateBold,
		Label:       "Bold",
		Description: "High contrast black and white",
		Palette: templatedomain.Palette{
			Primary: "#000000", Secondary: "#f0f0f0",
			HeaderBg: "#000000", HeaderText: "#ffffff",
			TableHeaderBg: "#000000", TableHeaderText: "#ffffff",
			Text: "#000000", LightText: "#666666",
			Border: "#dddddd", Accent: "#000000",
		},
		Typography: templatedomain.Typography{FontStack: "'Arial Black', Arial, sans-serif", HeadingWeight: 900, Uppercase: true, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 3, ZebraRows: true, NotesBg: "#f0f0f0"},
	},
	{
		ID:          templatedomain.TemplateElegant,
		Label:       "Elegant",
		Description: "Gold accents with refined typography",
		Palette: templatedomain.Palette{
			Primary: "#2c3e50", Secondary: "#d4af37",
			HeaderBg: "#ffffff", HeaderText: "#2c3e50",
			TableHeaderBg: "#f8f9fa", TableHeaderText: "#2c3e50",
			Text: "#333333", LightText: "#6c757d",
			Border: "#d4af37", Accent: "#d4af37",
		},
		Typography: templatedomain.Typography{FontStack: "'Palatino Linotype', 'Book Antiqua', Palatino, serif", HeadingWeight: 400, Italic: true, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 1, NotesBg: "#fafaf9"},
	},
	{
		ID:          templatedomain.TemplateCorporate,
		Label:       "Corporate",
		Description: "Dark professional business theme",
		Palette: templatedomain.Palette{
			Primary: "#1a1a2e", Secondary: "#16213e",
			HeaderBg: "#1a1a2e", HeaderText: "#ffffff",
			TableHeaderBg: "#16213e", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#666666",
			Border: "#dee2e6", Accent: "#16213e",
		},
		Typography: templatedomain.Typography{FontStack: sansStack, HeadingWeight: 700, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, ZebraRows: true, NotesBg: notesDefault},
	},
	{
		ID:          templatedomain.TemplateCreative,
		Label:       "Creative",
		Description: "Colorful gradients and vibrant design",
		Palette: templatedomain.Palette{
			Primary: "#2d3436", Secondary: "#ff6b6b",
			HeaderBg: "#ffffff", HeaderText: "#2d3436",
			TableHeaderBg: "#a29bfe", TableHeaderText: "#ffffff",
			Text: "#2d3436", LightText: "#636e72",
			Border: "#dfe6e9", Accent: "#ff6b6b",
		},
		Typography: templatedomain.Typography{FontStack: sansStack, HeadingWeight: 800, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 4, RadiusPx: 10, ZebraRows: true, NotesBg: "#fff5f5"},
	},
	{
		ID:          templatedomain.TemplateSimple,
		Label:       "Simple",
		Description: "Basic no-frills layout",
		Palette: templatedomain.Palette{
			Primary: "#000000", Secondary: "#555555",
			HeaderBg: "#ffffff", HeaderText: "#000000",
			TableHeaderBg: "#ffffff", TableHeaderText: "#000000",
			Text: "#333333", LightText: "#555555",
			Border: "#dddddd", Accent: "#000000",
		},
		Typography: templatedomain.Typography{FontStack: sansStack, HeadingWeight: 700, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderRule: templatedomain.RuleNone, NotesBg: notesDefault},
	},
	{
		ID:          templatedomain.TemplateTech,
		Label:       "Tech",
		Description: "Dark mode with monospace fonts",
		Palette: templatedomain.Palette{
			Primary: "#58a6ff", Secondary: "#0d1117",
			HeaderBg: "#0d1117", HeaderText: "#58a6ff",
			TableHeaderBg: "#0d1117", TableHeaderText: "#58a6ff",
			Text: "#c9d1d9", LightText: "#8b949e",
			Border: "#30363d", Accent: "#58a6ff",
		},
		Typography: templatedomain.Typography{FontStack: "'Courier New', Courier, monospace", HeadingWeight: 700, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 1, PageBg: "#0d1117", NotesBg: "#161b22"},
	},
	{
		ID:          templatedomain.TemplateLuxury,
		Label:       "Luxury",
		Description: "Premium gold and black design",
		Palette: templatedomain.Palette{
			Primary: "#d4af37", Secondary: "#1a1a1a",
			HeaderBg: "#1a1a1a", HeaderText: "#d4af37",
			TableHeaderBg: "#1a1a1a", TableHeaderText: "#d4af37",
			Text: "#333333", LightText: "#666666",
			Border: "#d4af37", Accent: "#d4af37",
		},
		Typography: templatedomain.Typography{FontStack: "'Didot', 'Bodoni MT', 'Times New Roman', serif", HeadingWeight: 400, TitleTracking: 4, Uppercase: true, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 2, NotesBg: "#fdf8e8"},
	},
	{
		ID:          templatedomain.TemplateStartup,
		Label:       "Startup",
		Description: "Fresh gradient with modern vibes",
		Palette: templatedomain.Palette{
			Primary: "#00c9ff", Secondary: "#92fe9d",
			HeaderBg: "#00c9ff", HeaderText: "#ffffff",
			TableHeaderBg: "#00c9ff", TableHeaderText: "#ffffff",
			Text: "#1a1a1a", LightText: "#6c757d",
			Border: "#e9ecef", Accent: "#92fe9d",
		},
		Typography: templatedomain.Typography{FontStack: "'Inter', -apple-system, BlinkMacSystemFont, sans-serif", HeadingWeight: 800, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, RadiusPx: 20, ZebraRows: true, NotesBg: "#f0fff4"},
	},
	{
		ID:          templatedomain.TemplateRetro,
		Label:       "Retro",
		Description: "Vintage brown tones with dashed borders",
		Palette: templatedomain.Palette{
			Primary: "#8b4513", Secondary: "#d2691e",
			HeaderBg: "#d2691e", HeaderText: "#ffffff",
			TableHeaderBg: "#d2691e", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#8b4513",
			Border: "#8b4513", Accent: "#ffd700",
		},
		Typography: templatedomain.Typography{FontStack: "'Courier New', Courier, monospace", HeadingWeight: 700, Uppercase: true, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleDashed, RuleWidthPx: 3, PageBg: "#f5e6d3", NotesBg: "#fff8e7"},
	},
	{
		ID:          templatedomain.TemplateNeon,
		Label:       "Neon",
		Description: "Glowing cyberpunk aesthetic",
		Palette: templatedomain.Palette{
			Primary: "#00ffff", Secondary: "#ff00ff",
			HeaderBg: "#000000", HeaderText: "#00ffff",
			TableHeaderBg: "#000000", TableHeaderText: "#ff00ff",
			Text: "#ffffff", LightText: "#888888",
			Border: "#333333", Accent: "#00ff00",
		},
		Typography: templatedomain.Typography{FontStack: sansStack, HeadingWeight: 700, TitleTracking: 3, Uppercase: true, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 2, PageBg: "#0a0a0a", NotesBg: "#111111"},
	},
	{
		ID:          templatedomain.TemplatePastel,
		Label:       "Pastel",
		Description: "Soft colors with rounded elements",
		Palette: templatedomain.Palette{
			Primary: "#6c5ce7", Secondary: "#fd79a8",
			HeaderBg: "#ffd1dc", HeaderText: "#6c5ce7",
			TableHeaderBg: "#a29bfe", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#636e72",
			Border: "#dfe6e9", Accent: "#fd79a8",
		},
		Typography: templatedomain.Typography{FontStack: "'Quicksand', 'Rounded', sans-serif", HeadingWeight: 600, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, RadiusPx: 25, ZebraRows: true, NotesBg: "#fff0f5"},
	},
	{
		ID:          templatedomain.TemplateOcean,
		Label:       "Ocean",
		Description: "Deep blue waves and aquatic theme",
		Palette: templatedomain.Palette{
			Primary: "#005c97", Secondary: "#00bcd4",
			HeaderBg: "#005c97", HeaderText: "#ffffff",
			TableHeaderBg: "#0097a7", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#00695c",
			Border: "#b2ebf2", Accent: "#00bcd4",
		},
		Typography: templatedomain.Typography{FontStack: "'Trebuchet MS', sans-serif", HeadingWeight: 700, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, ZebraRows: true, NotesBg: "#e0f7fa"},
	},
	{
		ID:          templatedomain.TemplateForest,
		Label:       "Forest",
		Description: "Natural green earthy tones",
		Palette: templatedomain.Palette{
			Primary: "#2e7d32", Secondary: "#1b5e20",
			HeaderBg: "#2e7d32", HeaderText: "#ffffff",
			TableHeaderBg: "#388e3c", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#2e7d32",
			Border: "#c5e1a5", Accent: "#43a047",
		},
		Typography: templatedomain.Typography{FontStack: "Georgia, serif", HeadingWeight: 700, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, RadiusPx: 30, ZebraRows: true, NotesBg: "#f1f8e9"},
	},
	{
		ID:          templatedomain.TemplateSunset,
		Label:       "Sunset",
		Description: "Warm orange and pink gradients",
		Palette: templatedomain.Palette{
			Primary: "#ff6b6b", Secondary: "#feca57",
			HeaderBg: "#ff6b6b", HeaderText: "#ffffff",
			TableHeaderBg: "#ff6b6b", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#c23616",
			Border: "#ffe5e5", Accent: "#ff8e53",
		},
		Typography: templatedomain.Typography{FontStack: "'Helvetica Neue', sans-serif", HeadingWeight: 700, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, ZebraRows: true, NotesBg: "#fff5f0"},
	},
	{
		ID:          templatedomain.TemplateMidnight,
		Label:       "Midnight",
		Description: "Dark indigo night sky theme",
		Palette: templatedomain.Palette{
			Primary: "#5c6bc0", Secondary: "#3949ab",
			HeaderBg: "#3949ab", HeaderText: "#c5cae9",
			TableHeaderBg: "#303f9f", TableHeaderText: "#c5cae9",
			Text: "#e8eaf6", LightText: "#9fa8da",
			Border: "#3949ab", Accent: "#7986cb",
		},
		Typography: templatedomain.Typography{FontStack: "'Segoe UI', Tahoma, sans-serif", HeadingWeight: 600, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, PageBg: "#0c1445", NotesBg: "#1a237e"},
	},
	{
		ID:          templatedomain.TemplateCandy,
		Label:       "Candy",
		Description: "Sweet playful bright colors",
		Palette: templatedomain.Palette{
			Primary: "#ff006e", Secondary: "#8338ec",
			HeaderBg: "#ff6ec7", HeaderText: "#ff006e",
			TableHeaderBg: "#8338ec", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#8338ec",
			Border: "#ff9671", Accent: "#f72585",
		},
		Typography: templatedomain.Typography{FontStack: "'Comic Sans MS', 'Marker Felt', cursive", HeadingWeight: 700, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, RadiusPx: 25, ZebraRows: true, NotesBg: "#fff0fa"},
	},
	{
		ID:          templatedomain.TemplateIndustrial,
		Label:       "Industrial",
		Description: "Metallic gray with yellow accents",
		Palette: templatedomain.Palette{
			Primary: "#ffd54f", Secondary: "#263238",
			HeaderBg: "#263238", HeaderText: "#ffd54f",
			TableHeaderBg: "#263238", TableHeaderText: "#ffd54f",
			Text: "#333333", LightText: "#546e7a",
			Border: "#37474f", Accent: "#ffd54f",
		},
		Typography: templatedomain.Typography{FontStack: "'Roboto Condensed', 'Arial Narrow', sans-serif", HeadingWeight: 700, TitleTracking: 2, Uppercase: true, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 4, NotesBg: "#eceff1"},
	},
	{
		ID:          templatedomain.TemplateVintage,
		Label:       "Vintage",
		Description: "Classic brown parchment style",
		Palette: templatedomain.Palette{
			Primary: "#8b7355", Secondary: "#d4a574",
			HeaderBg: "#8b7355", HeaderText: "#fffef9",
			TableHeaderBg: "#8b7355", TableHeaderText: "#fffef9",
			Text: "#5d4e37", LightText: "#8b7355",
			Border: "#d4a574", Accent: "#8b7355",
		},
		Typography: templatedomain.Typography{FontStack: "'Garamond', 'Times New Roman', serif", HeadingWeight: 400, Italic: true, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleDouble, RuleWidthPx: 4, PageBg: "#f4e8d8", NotesBg: "#fffef9"},
	},
	{
		ID:          templatedomain.TemplateFuturistic,
		Label:       "Futuristic",
		Description: "Sci-fi cyan with angular design",
		Palette: templatedomain.Palette{
			Primary: "#00d4ff", Secondary: "#004d7a",
			HeaderBg: "#004d7a", HeaderText: "#00d4ff",
			TableHeaderBg: "#004d7a", TableHeaderText: "#00d4ff",
			Text: "#66d9ef", LightText: "#66d9ef",
			Border: "#00d4ff", Accent: "#00d4ff",
		},
		Typography: templatedomain.Typography{FontStack: "'Orbitron', 'Futura', sans-serif", HeadingWeight: 700, TitleTracking: 4, Uppercase: true, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 2, PageBg: "#0f2027", NotesBg: "#0b2b3a"},
	},
	{
		ID:          templatedomain.TemplateMinimalistPro,
		Label:       "Minimalist Pro",
		Description: "Ultimate clean professional minimal",
		Palette: templatedomain.Palette{
			Primary: "#000000", Secondary: "#555555",
			HeaderBg: "#ffffff", HeaderText: "#000000",
			TableHeaderBg: "#ffffff", TableHeaderText: "#000000",
			Text: "#333333", LightText: "#999999",
			Border: "#e0e0e0", Accent: "#e31e24",
		},
		Typography: templatedomain.Typography{FontStack: "'Helvetica Neue', 'Helvetica', sans-serif", HeadingWeight: 300, TitleTracking: 6, Uppercase: true, BaseFontSizePx: 11},
		Decoration: templatedomain.Decoration{HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 1, NotesBg: "#ffffff"},
	},
	{
		ID:          templatedomain.TemplateColorful,
		Label:       "Colorful",
		Description: "Vibrant rainbow gradients everywhere",
		Palette: templatedomain.Palette{
			Primary: "#f093fb", Secondary: "#667eea",
			HeaderBg: "#f093fb", HeaderText: "#ffffff",
			TableHeaderBg: "#4facfe", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#666666",
			Border: "#e0e0e0", Accent: "#f5576c",
		},
		Typography: templatedomain.Typography{FontStack: "'Poppins', sans-serif", HeadingWeight: 700, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, RadiusPx: 16, ZebraRows: true, NotesBg: "#fdf2ff"},
	},
	{
		ID:          templatedomain.TemplateMonochrome,
		Label:       "Monochrome",
		Description: "Pure black and white contrast",
		Palette: templatedomain.Palette{
			Primary: "#000000", Secondary: "#e0e0e0",
			HeaderBg: "#000000", HeaderText: "#ffffff",
			TableHeaderBg: "#000000", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#666666",
			Border: "#cccccc", Accent: "#000000",
		},
		Typography: templatedomain.Typography{FontStack: sansStack, HeadingWeight: 700, TitleTracking: 3, Uppercase: true, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 2, ZebraRows: true, NotesBg: "#f5f5f5"},
	},
	{
		ID:          templatedomain.TemplateGradient,
		Label:       "Gradient",
		Description: "Multi-color gradient paradise",
		Palette: templatedomain.Palette{
			Primary: "#667eea", Secondary: "#f093fb",
			HeaderBg: "#667eea", HeaderText: "#ffffff",
			TableHeaderBg: "#8e2de2", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#666666",
			Border: "#e0e0e0", Accent: "#764ba2",
		},
		Typography: templatedomain.Typography{FontStack: "'Segoe UI', sans-serif", HeadingWeight: 700, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, RadiusPx: 16, ZebraRows: true, NotesBg: "#f5f0ff"},
	},
	{
		ID:          templatedomain.TemplateGeometric,
		Label:       "Geometric",
		Description: "Angular shapes and clip-paths",
		Palette: templatedomain.Palette{
			Primary: "#2c3e50", Secondary: "#e74c3c",
			HeaderBg: "#2c3e50", HeaderText: "#ecf0f1",
			TableHeaderBg: "#3498db", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#7f8c8d",
			Border: "#bdc3c7", Accent: "#e74c3c",
		},
		Typography: templatedomain.Typography{FontStack: "'Montserrat', sans-serif", HeadingWeight: 800, TitleTracking: 2, Uppercase: true, BaseFontSizePx: 12},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleSolid, RuleWidthPx: 3, ZebraRows: true, NotesBg: "#ecf0f1"},
	},
	{
		ID:          templatedomain.TemplateOrganic,
		Label:       "Organic",
		Description: "Natural earthy green tones",
		Palette: templatedomain.Palette{
			Primary: "#3d7068", Secondary: "#6a9c89",
			HeaderBg: "#6a9c89", HeaderText: "#f5f5dc",
			TableHeaderBg: "#87a78f", TableHeaderText: "#ffffff",
			Text: "#333333", LightText: "#6a9c89",
			Border: "#c8dcc8", Accent: "#6a9c89",
		},
		Typography: templatedomain.Typography{FontStack: "'Lora', 'Georgia', serif", HeadingWeight: 600, Italic: true, BaseFontSizePx: 13},
		Decoration: templatedomain.Decoration{HeaderBand: true, HeaderRule: templatedomain.RuleNone, RadiusPx: 30, PageBg: "#faf9f6", ZebraRows: true, NotesBg: "#f0f5ef"},
	},
	{
		ID:          templatedomain.TemplateSwiss,
		Label:       "Swiss",
		Description: "Clean Helvetica-based design",
		Palette: templatedomain.Palette{
			Primary: "#e31e24", Secondary: "#000000",
			HeaderBg: "#ffffff", HeaderText: "#000000",
			TableHeaderBg: "#ffffff", TableHeaderText: "#000000",
			Text: "#333333", LightText: "#666666",
			Border: "#cccccc", Accent: "#e31e24",
		},
		Typography: templatedomain.Typography{FontStack: "'Helvetica', 'Arial', sans-serif", HeadingWeight: 700, TitleTracking: 1, Uppercase: true, BaseFontSizePx: 11},
		Decoration: templatedomain.Decoration{HeaderRule: templatedomain.RuleNone, NotesBg: "#ffffff"},
	},
}
