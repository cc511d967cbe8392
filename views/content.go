package views

var aboutStats = []Stat{
	{Value: "2026", Label: "Founded"},
	{Value: "120+", Label: "Steps / Pair"},
	{Value: "∞", Label: "Innovation"},
}

func About() AboutContent {
	return AboutContent{Stats: aboutStats}
}

var termsSections = []TermsSection{
	{
		Heading: "Acceptance of Terms",
		Body:    "By accessing and using the POSH website and services, you agree to be bound by these Terms of Service. If you do not agree to all of these terms, do not use this service.",
	},
	{
		Heading: "Product Availability",
		Body:    "All products are subject to availability, and we reserve the right to impose quantity limits on any order, to reject all or part of an order, and to discontinue products without notice.",
	},
	{
		Heading: "Shipping & Returns",
		Body:    `We ship worldwide from our hub in Kadampazhipuram. Returns are accepted within 30 days of delivery for unworn items in original packaging. Custom "Edge" series items are final sale.`,
	},
	{
		Heading: "Intellectual Property",
		Body:    "The design, engineering, and branding of POSH footwear are protected by international copyright and patent laws. Unauthorized reproduction is strictly prohibited.",
	},
	{
		Heading: "Limitation of Liability",
		Body:    "POSH shall not be liable for any indirect, incidental, special, consequential or punitive damages resulting from your use of our products or services.",
	},
}

func Terms() TermsContent {
	return TermsContent{Updated: "February 2026", Sections: termsSections}
}
