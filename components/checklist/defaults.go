package checklist

// Title is the page heading.
const Title = "Comprehensive Funnel Checklist & Management App"

// Intro is rendered above every section.
const Intro = "Welcome to the Funnel Checklist & Management App! This tool will help you design, track, and optimize various marketing funnels. " +
	"From digital products to software funnels, use this checklist to ensure each element is aligned for success. Utilize additional tips, " +
	"notes, and resources to further enhance your funnel-building journey."

// NextStepsHeading and NextSteps form the closing block rendered under every section.
const NextStepsHeading = "Next Steps"

var nextSteps = []string{
	"Review your selected funnels, features, and goals.",
	"Visit the FAQ and Resources for guidance on further improving your funnel strategies.",
	"Regularly update this checklist as you refine and optimize your funnels.",
}

// NextSteps returns the closing checklist items.
func NextSteps() []string {
	return append([]string{}, nextSteps...)
}

var defaultFunnels = []CatalogEntry{
	{Name: "Digital Download Funnel", Description: "For offering downloadable products like e-books, software, or digital courses. Key elements include strong calls-to-action and instant delivery options."},
	{Name: "Physical Product Funnel", Description: "Ideal for e-commerce sales of tangible items. Focus on optimizing for conversions with upsell/downsell features."},
	{Name: "Event Funnel", Description: "Designed for promoting live or virtual events. Should include registration forms, reminders, and post-event follow-up sequences."},
	{Name: "Membership Funnel", Description: "Helps in building a subscription-based model, often for exclusive content. Essential features are retention strategies and loyalty rewards."},
	{Name: "Webinar Funnel", Description: "Optimized to attract and convert webinar attendees. Key elements include registration, reminders, and a follow-up sales offer."},
	{Name: "Appointment Funnel", Description: "Encourages visitors to schedule appointments. Often used in service-based businesses for consultations or meetings."},
	{Name: "Affiliate Funnel", Description: "Targets affiliate marketers to promote products. Includes referral links and performance tracking."},
	{Name: "Course Funnel", Description: "For selling online educational courses. Includes sections for previews, pricing, and payment options."},
	{Name: "Software Funnel", Description: "Used to promote and sell software products. Focuses on free trials, feature showcases, and customer support."},
	{Name: "Wait List Funnel", Description: "Builds anticipation for upcoming products. Collects contact info to notify potential customers when ready."},
	{Name: "Lead Magnet Funnel", Description: "Offers a valuable freebie in exchange for contact information, often used as an entry point for other funnels."},
}

var defaultFeatures = []CatalogEntry{
	{Name: "A/B Testing", Description: "Test multiple versions of your funnel to determine which one drives more conversions."},
	{Name: "Themes", Description: "Apply different visual themes to enhance user experience and brand consistency."},
	{Name: "Email Segmentation", Description: "Organize leads into targeted segments for personalized follow-ups."},
	{Name: "Copy", Description: "Focus on persuasive, compelling copywriting to engage and convert leads."},
	{Name: "CTA", Description: "Place strong, clear calls-to-action throughout the funnel to guide visitors."},
	{Name: "Upsells/Downsells", Description: "Include additional offers to increase order value post-initial purchase."},
	{Name: "Close Sale", Description: "Implement techniques to finalize the sale, such as limited-time offers or social proof."},
	{Name: "Order Bump", Description: "Provide an extra offer at checkout to increase the overall transaction value."},
	{Name: "Builder", Description: "Utilize a funnel builder tool to easily create and customize funnels."},
	{Name: "TO-C", Description: "Include Terms and Conditions to set clear expectations with customers."},
	{Name: "Name Custom Link", Description: "Create a unique URL to improve brand awareness and ease of access."},
}

var defaultFAQ = []FAQItem{
	{Question: "What is a funnel?", Answer: "A funnel is a series of steps designed to guide visitors towards a specific goal, such as a sale or lead."},
	{Question: "How often should I test my funnels?", Answer: "Regular testing is recommended, especially during major promotions or new product launches."},
	{Question: "How can I improve my conversion rates?", Answer: "Focus on clear CTAs, optimized copy, A/B testing, and audience segmentation."},
}

var defaultResources = []Resource{
	{Name: "ClickFunnels Blog", URL: "https://blog.clickfunnels.com"},
	{Name: "HubSpot Funnel Guide", URL: "https://blog.hubspot.com/marketing/sales-funnel"},
	{Name: "Neil Patel on Funnels", URL: "https://neilpatel.com/blog/sales-funnel/"},
	{Name: "A/B Testing Guide by Optimizely", URL: "https://www.optimizely.com/optimization-glossary/ab-testing/"},
}

// DefaultFunnels returns the built-in funnel catalog in display order.
func DefaultFunnels() []CatalogEntry {
	return withCodes(defaultFunnels)
}

// DefaultFeatures returns the built-in feature catalog in display order.
func DefaultFeatures() []CatalogEntry {
	return withCodes(defaultFeatures)
}

// DefaultFAQ returns the static FAQ entries.
func DefaultFAQ() []FAQItem {
	return append([]FAQItem{}, defaultFAQ...)
}

// DefaultResources returns the static outbound links.
func DefaultResources() []Resource {
	return append([]Resource{}, defaultResources...)
}

func withCodes(entries []CatalogEntry) []CatalogEntry {
	out := make([]CatalogEntry, len(entries))
	for i, entry := range entries {
		out[i] = normalizeEntry(entry)
	}
	return out
}
