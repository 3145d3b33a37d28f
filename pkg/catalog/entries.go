package catalog

// Curated skills from Anthropic and community repositories. Snapshot
// metrics, refreshed manually.
var allEntries = []Entry{
	{
		ID:          "anthropic-docx",
		Name:        "Word Documents (docx)",
		Description: "Create, edit, and analyze Word documents with support for tracked changes, headers, footers, and complex formatting.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/docx",
		Stars:       2400,
		Downloads:   15000,
		Rating:      4.9,
		Category:    "documents",
		Tags:        []string{"Documents", "Office", "Word"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-pdf",
		Name:        "PDF Toolkit (pdf)",
		Description: "Comprehensive PDF manipulation toolkit for extracting text and tables, converting formats, and analyzing document structure.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/pdf",
		Stars:       3100,
		Downloads:   22000,
		Rating:      4.8,
		Category:    "documents",
		Tags:        []string{"Documents", "PDF", "Extract"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-pptx",
		Name:        "PowerPoint (pptx)",
		Description: "Create, edit, and analyze PowerPoint presentations with support for layouts, themes, animations, and speaker notes.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/pptx",
		Stars:       1800,
		Downloads:   9500,
		Rating:      4.7,
		Category:    "documents",
		Tags:        []string{"Documents", "Office", "Presentations"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-xlsx",
		Name:        "Excel Spreadsheets (xlsx)",
		Description: "Create, edit, and analyze Excel spreadsheets with support for formulas, charts, pivot tables, and conditional formatting.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/xlsx",
		Stars:       2200,
		Downloads:   14000,
		Rating:      4.8,
		Category:    "documents",
		Tags:        []string{"Documents", "Office", "Excel", "Data"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-algorithmic-art",
		Name:        "Algorithmic Art",
		Description: "Create generative art using p5.js with seeded randomness for reproducible creative outputs.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/algorithmic-art",
		Stars:       1500,
		Downloads:   6800,
		Rating:      4.6,
		Category:    "design",
		Tags:        []string{"Art", "p5.js", "Generative"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-canvas-design",
		Name:        "Canvas Design",
		Description: "Design beautiful visual art in .png and .pdf formats with support for complex layouts and graphics.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/canvas-design",
		Stars:       1200,
		Downloads:   5400,
		Rating:      4.5,
		Category:    "design",
		Tags:        []string{"Design", "Canvas", "Graphics"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-slack-gif",
		Name:        "Slack GIF Creator",
		Description: "Create animated GIFs optimized for Slack's size constraints and quality requirements.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/slack-gif-creator",
		Stars:       890,
		Downloads:   3200,
		Rating:      4.4,
		Category:    "design",
		Tags:        []string{"GIF", "Slack", "Animation"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-frontend-design",
		Name:        "Frontend Design",
		Description: "Instructs Claude to avoid 'AI slop' and make bold, beautiful design decisions for frontend development.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/blob/main/skills/frontend-design",
		Stars:       2800,
		Downloads:   18000,
		Rating:      4.9,
		Category:    "development",
		Tags:        []string{"Frontend", "Design", "Web"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-artifacts-builder",
		Name:        "Artifacts Builder",
		Description: "Build complex claude.ai HTML artifacts using React, Tailwind CSS, and modern web technologies.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/artifacts-builder",
		Stars:       2100,
		Downloads:   12000,
		Rating:      4.7,
		Category:    "development",
		Tags:        []string{"React", "Artifacts", "Web"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-mcp-builder",
		Name:        "MCP Server Builder",
		Description: "Guide for creating high-quality Model Context Protocol (MCP) servers with best practices.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/mcp-builder",
		Stars:       1900,
		Downloads:   8500,
		Rating:      4.8,
		Category:    "development",
		Tags:        []string{"MCP", "Server", "Protocol"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-webapp-testing",
		Name:        "Web App Testing",
		Description: "Test local web applications using Playwright for end-to-end testing and automation.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/webapp-testing",
		Stars:       1600,
		Downloads:   7200,
		Rating:      4.6,
		Category:    "testing",
		Tags:        []string{"Testing", "Playwright", "E2E"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-brand-guidelines",
		Name:        "Brand Guidelines",
		Description: "Apply Anthropic's official brand colors and typography for consistent branding.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/brand-guidelines",
		Stars:       650,
		Downloads:   2800,
		Rating:      4.3,
		Category:    "design",
		Tags:        []string{"Branding", "Design", "Style"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-internal-comms",
		Name:        "Internal Communications",
		Description: "Write internal communications like status reports, announcements, and team updates.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/internal-comms",
		Stars:       480,
		Downloads:   2100,
		Rating:      4.2,
		Category:    "business",
		Tags:        []string{"Communication", "Business", "Writing"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "anthropic-skill-creator",
		Name:        "Skill Creator",
		Description: "Interactive skill creation tool guiding users through building new skills step by step.",
		Author:      "Anthropic",
		GithubURL:   "https://github.com/anthropics/skills/tree/main/skills/skill-creator",
		Stars:       1100,
		Downloads:   4500,
		Rating:      4.5,
		Category:    "development",
		Tags:        []string{"Skills", "Creator", "Tools"},
		Source:      "official",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "community-superpowers",
		Name:        "Superpowers",
		Description: "Core skills library with 20+ battle-tested skills including TDD, debugging, and code review capabilities.",
		Author:      "obra",
		GithubURL:   "https://github.com/obra/superpowers",
		Stars:       3500,
		Downloads:   25000,
		Rating:      4.9,
		Category:    "development",
		Tags:        []string{"TDD", "Debugging", "Code Review"},
		Source:      "community",
		CreatedAt:   "2024-11-15",
		UpdatedAt:   "2025-01-12",
	},
	{
		ID:          "community-superpowers-lab",
		Name:        "Superpowers Lab",
		Description: "Experimental skills for Claude Code Superpowers with cutting-edge features.",
		Author:      "obra",
		GithubURL:   "https://github.com/obra/superpowers-lab",
		Stars:       1200,
		Downloads:   6500,
		Rating:      4.5,
		Category:    "development",
		Tags:        []string{"Experimental", "Development"},
		Source:      "community",
		CreatedAt:   "2024-12-01",
		UpdatedAt:   "2025-01-10",
	},
	{
		ID:          "community-ios-simulator",
		Name:        "iOS Simulator Skill",
		Description: "iOS app building, navigation, and testing through automation with simulator integration.",
		Author:      "conorluddy",
		GithubURL:   "https://github.com/conorluddy/ios-simulator-skill",
		Stars:       890,
		Downloads:   4200,
		Rating:      4.6,
		Category:    "mobile",
		Tags:        []string{"iOS", "Mobile", "Testing"},
		Source:      "community",
		CreatedAt:   "2024-12-10",
		UpdatedAt:   "2025-01-05",
	},
	{
		ID:          "community-ffuf",
		Name:        "FFUF Web Fuzzing",
		Description: "Expert guidance for ffuf web fuzzing during penetration testing and security assessments.",
		Author:      "jthack",
		GithubURL:   "https://github.com/jthack/ffuf_claude_skill",
		Stars:       750,
		Downloads:   3100,
		Rating:      4.4,
		Category:    "security",
		Tags:        []string{"Security", "Fuzzing", "Pentesting"},
		Source:      "community",
		CreatedAt:   "2024-11-20",
		UpdatedAt:   "2025-01-08",
	},
	{
		ID:          "community-playwright",
		Name:        "Playwright Skill",
		Description: "General-purpose browser automation using Playwright for testing and scraping.",
		Author:      "lackeyjb",
		GithubURL:   "https://github.com/lackeyjb/playwright-skill",
		Stars:       1100,
		Downloads:   5800,
		Rating:      4.7,
		Category:    "testing",
		Tags:        []string{"Playwright", "Browser", "Automation"},
		Source:      "community",
		CreatedAt:   "2024-11-25",
		UpdatedAt:   "2025-01-09",
	},
	{
		ID:          "community-d3js",
		Name:        "D3.js Visualizations",
		Description: "Create stunning data visualizations using d3.js with interactive charts and graphs.",
		Author:      "chrisvoncsefalvay",
		GithubURL:   "https://github.com/chrisvoncsefalvay/claude-d3js-skill",
		Stars:       680,
		Downloads:   2900,
		Rating:      4.5,
		Category:    "data",
		Tags:        []string{"D3.js", "Visualization", "Charts"},
		Source:      "community",
		CreatedAt:   "2024-12-05",
		UpdatedAt:   "2025-01-06",
	},
	{
		ID:          "community-scientific",
		Name:        "Scientific Skills Collection",
		Description: "Comprehensive collection of ready-to-use scientific skills for research and analysis.",
		Author:      "K-Dense-AI",
		GithubURL:   "https://github.com/K-Dense-AI/claude-scientific-skills",
		Stars:       920,
		Downloads:   4800,
		Rating:      4.6,
		Category:    "data",
		Tags:        []string{"Science", "Research", "Analysis"},
		Source:      "community",
		CreatedAt:   "2024-11-30",
		UpdatedAt:   "2025-01-11",
	},
	{
		ID:          "community-web-assets",
		Name:        "Web Asset Generator",
		Description: "Generates web assets like favicons, app icons, and social media images.",
		Author:      "alonw0",
		GithubURL:   "https://github.com/alonw0/web-asset-generator",
		Stars:       450,
		Downloads:   1800,
		Rating:      4.3,
		Category:    "design",
		Tags:        []string{"Assets", "Icons", "Web"},
		Source:      "community",
		CreatedAt:   "2024-12-15",
		UpdatedAt:   "2025-01-04",
	},
	{
		ID:          "community-loki-mode",
		Name:        "Loki Mode",
		Description: "Multi-agent autonomous startup system orchestrating 37 AI agents for complex tasks.",
		Author:      "asklokesh",
		GithubURL:   "https://github.com/asklokesh/claudeskill-loki-mode",
		Stars:       2100,
		Downloads:   9800,
		Rating:      4.7,
		Category:    "ai",
		Tags:        []string{"Multi-Agent", "Autonomous", "AI"},
		Source:      "community",
		CreatedAt:   "2024-12-08",
		UpdatedAt:   "2025-01-13",
	},
}
