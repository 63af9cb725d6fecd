package chat

// Rule maps a list of trigger keywords to a canned response. Rules are
// evaluated in order; the first rule with any keyword contained in the
// lowercased query wins, so more specific topics (hs2, housing) must come
// before the catch-all "about" rule.
type Rule struct {
	Topic    string
	Patterns []string
	Response string
}

// WelcomeMessage greets the visitor when the widget opens.
const WelcomeMessage = "Hello! I'm Oak, your guide to Old Oak Town. I can help you with:\n\n" +
	"- HS2 & development updates\n- Finding local businesses\n- Community resources\n" +
	"- Events & activities\n- Housing information\n- Job opportunities\n\nHow can I help you today?"

// Fallback is returned when no rule matches.
const Fallback = "I'm not sure I understood that. Here's what I can help with:\n\n" +
	"- **HS2 & Development** - Station updates, timeline\n" +
	"- **Housing** - Affordable homes, applications\n" +
	"- **Jobs** - Employment opportunities, training\n" +
	"- **Businesses** - Find or list local businesses\n" +
	"- **Events** - Community activities\n" +
	"- **Resources** - Support for residents & businesses\n\n" +
	"Try asking something like \"Tell me about HS2\" or \"How do I find local businesses?\""

// Rules is the ordered knowledge table for the site assistant.
var Rules = []Rule{
	{
		Topic:    "greetings",
		Patterns: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "howdy"},
		Response: "Hello! Welcome to Old Oak Town. I'm here to help you navigate the site and answer questions about the Old Oak Common regeneration. What would you like to know?",
	},
	{
		Topic:    "hs2",
		Patterns: []string{"hs2", "high speed", "train", "station", "railway", "rail"},
		Response: "The HS2 Old Oak Common station is a major part of the regeneration! Here's what you should know:\n\n" +
			"**Station Opening:** Expected 2033\n**Investment:** £1.7 billion\n" +
			"**Connections:** Elizabeth Line, Central Line, Overground\n**To Birmingham:** 38 minutes\n\n" +
			"The station will be one of the UK's largest and best-connected transport hubs.\n\n[View latest HS2 news →](#news)",
	},
	{
		Topic:    "housing",
		Patterns: []string{"housing", "homes", "flat", "apartment", "rent", "buy", "affordable", "property", "live", "move"},
		Response: "Old Oak will have 25,500 new homes, with 50% designated as affordable housing:\n\n" +
			"**Social Rent:** ~60% of market rate\n**London Affordable:** ~80% of market rate\n**Shared Ownership:** Buy 25-75%\n\n" +
			"**Priority given to:**\n- Existing local residents\n- Key workers (teachers, nurses, etc.)\n\n" +
			"First homes available from late 2027.\n\n[View housing resources →](#resources)",
	},
	{
		Topic:    "jobs",
		Patterns: []string{"job", "work", "employment", "career", "hiring", "vacancy", "training", "apprentice"},
		Response: "The regeneration will create 65,000 new jobs! The Old Oak Jobs Centre offers:\n\n" +
			"**Free Services:**\n- Job matching & placement\n- CV writing support\n- Interview preparation\n" +
			"- Skills training courses\n- Apprenticeship links\n\n" +
			"**Location:** 45 High Street, Harlesden\n**Hours:** Mon-Fri 9am-6pm, Sat 10am-2pm\n\n[View community resources →](#resources)",
	},
	{
		Topic:    "businessDirectory",
		Patterns: []string{"find business", "local business", "directory", "search business", "shops", "services", "plumber", "electrician", "restaurant", "cafe"},
		Response: "Looking for local businesses? Our Business Directory can help!\n\n" +
			"- Search by category, service type, or name\n- View featured and premium listings\n- Get contact details directly\n\n" +
			"[Browse Business Directory →](business-directory.html)\n\nCan't find what you need? Let me know what service you're looking for!",
	},
	{
		Topic:    "listBusiness",
		Patterns: []string{"list my business", "advertise", "add business", "submit business", "promote", "listing"},
		Response: "Great! We have several options to list your business:\n\n" +
			"**Free Listing** - £0\nBasic directory presence with contact details\n\n" +
			"**Featured Listing** - £35/month\nTop placement, logo, enhanced description\n\n" +
			"**Premium Package** - £75/month\nHomepage banner, newsletter feature, analytics\n\n" +
			"**Newsletter Sponsor** - £150/month\nReach 5,000+ subscribers directly\n\n" +
			"[Submit your business now →](business-submit.html)",
	},
	{
		Topic:    "events",
		Patterns: []string{"event", "what's on", "activities", "meeting", "forum", "tour", "market"},
		Response: "Here are upcoming community events:\n\n" +
			"**Old Oak Community Forum**\nMonthly meetings at Harlesden Library\nShare your views on local developments\n\n" +
			"**HS2 Station Tours**\nGuided tours with Q&A sessions\n\n" +
			"**Community Events**\nMarkets, festivals, and local gatherings\n\n[View all events →](#events)",
	},
	{
		Topic:    "residents",
		Patterns: []string{"resident", "community resource", "support", "help", "library", "health", "school", "education", "transport"},
		Response: "We have resources organized for residents:\n\n" +
			"- Housing & Support\n- Education & Schools\n- Health & Wellbeing\n- Transport Information\n" +
			"- Library Services\n- Jobs & Training\n\n[View all resident resources →](#resources)",
	},
	{
		Topic:    "businessResources",
		Patterns: []string{"business resource", "permits", "planning", "grants", "funding", "business support"},
		Response: "Resources for local businesses:\n\n" +
			"**Planning & Permits**\nGuidance on applications\n\n**Funding & Grants**\nFinancial support opportunities\n\n" +
			"**Business Services**\nNetworking and support\n\n**Marketing & Promotion**\nReach local customers\n\n[View business resources →](#resources)",
	},
	{
		Topic:    "development",
		Patterns: []string{"timeline", "when", "development", "regeneration", "plan", "masterplan", "phase", "future"},
		Response: "Old Oak regeneration timeline:\n\n" +
			"**Area:** 140 hectares\n**Homes:** 25,500 planned\n**Jobs:** 65,000 expected\n**Timeline:** 2025-2039+\n\n" +
			"**Key Phases:**\n- 2025-2029: Infrastructure & early housing\n- 2029-2033: Station completion\n- 2033+: Full development\n\n" +
			"[View development timeline →](#development)",
	},
	{
		Topic:    "contact",
		Patterns: []string{"contact", "email", "phone", "get in touch", "speak to", "message"},
		Response: "You can reach us in several ways:\n\n" +
			"**Email:** info@oldoaktown.co.uk\n**Contact Form:** Available on our site\n**Newsletter:** Weekly development updates\n\n" +
			"[Go to contact section →](#contact)",
	},
	{
		Topic:    "newsletter",
		Patterns: []string{"newsletter", "subscribe", "updates", "weekly", "email updates"},
		Response: "Stay informed with our weekly newsletter!\n\n" +
			"**What you'll get:**\n- Latest development news\n- Community events\n- Job opportunities\n- Local business features\n\n" +
			"Subscribe using the form in our footer or contact section.\n\n[Subscribe now →](#contact)",
	},
	{
		Topic:    "about",
		Patterns: []string{"about", "what is", "old oak", "tell me about"},
		Response: "**Old Oak Town** is your guide to West London's largest regeneration project.\n\n" +
			"**Location:** Old Oak Common, West London\n**What we do:** Local news, business directory, community resources\n" +
			"**Our mission:** Keep residents informed about the transformation\n\n" +
			"The area is being transformed into a major new neighbourhood with excellent transport links, thousands of homes, and tens of thousands of jobs.",
	},
	{
		Topic:    "keyContacts",
		Patterns: []string{"key contact", "organisation", "council", "opdc", "who to contact", "authority"},
		Response: "Key organisations for Old Oak:\n\n" +
			"**OPDC** (Development Corporation)\nMasterplan and planning authority\n\n" +
			"**HS2 Ltd**\nStation and railway construction\n\n" +
			"**Old Oak Neighbourhood Forum**\nCommunity representation\n\n" +
			"**Local Councils**\nHammersmith & Fulham, Ealing, Brent\n\n[View all key contacts →](#resources)",
	},
	{
		Topic:    "thanks",
		Patterns: []string{"thank", "thanks", "cheers", "appreciate"},
		Response: "You're welcome! Is there anything else I can help you with? Feel free to ask about:\n\n" +
			"- HS2 and development updates\n- Local businesses\n- Community resources\n- Events and activities",
	},
	{
		Topic:    "goodbye",
		Patterns: []string{"bye", "goodbye", "see you", "later", "quit", "exit"},
		Response: "Goodbye! Thanks for visiting Old Oak Town. Come back anytime for the latest updates on the regeneration. Have a great day!",
	},
}
