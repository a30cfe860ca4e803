package prompts

// Lookup tables mapping request enums to prompt fragments. Every table has a
// default entry so unrecognized values degrade instead of failing.

var themeFragments = map[string]string{
	"cyberpunk": `cyberpunk event poster masterpiece, neon noir aesthetic, futuristic
		megacityscape with holographic advertisements, vibrant neon color palette
		(electric blue, hot pink, lime green, purple), detailed cyberpunk architecture,
		atmospheric lighting with volumetric fog, cinematic composition, ultra detailed,
		professional graphic design, sharp focus, perfect lighting, no text`,
	"elegant": `elegant luxury event poster, gold foil accents and embossing, marble and
		crystal textures with subtle reflections, sophisticated modern typography,
		minimalist luxury design with ample white space, black and gold color scheme
		with deep navy, professional corporate design, high-end exclusive event,
		award-winning design, ultra detailed, clean composition, premium finish, no text`,
	"minimalistic": `minimalist professional poster masterpiece, Swiss International Style
		design, clean elegant typography with perfect kerning, ample intelligent white
		space, geometric elements with golden ratio proportions, modern sophisticated
		aesthetic, professional grid-based layout, refined color palette with single
		accent color, ultra sharp, perfect balance, timeless design, no text`,
	"vibrant": `vibrant energetic event poster masterpiece, bold saturated colors with
		complementary harmony, dynamic asymmetric composition, festival atmosphere with
		joyful celebration energy, mixed media collage with texture overlays,
		professional illustration style, eye-catching design with strong visual
		hierarchy, ultra detailed, perfect contrast and balance, no text`,
	"professional": `professional corporate event poster excellence, business conference
		premium design, clean modern layout with perfect alignment, sophisticated
		typography with multiple weights, brand-aligned design system, executive luxury
		event, ultra detailed, perfect spacing, corporate elegance, no text`,
	"nature": `organic natural event poster masterpiece, eco-friendly sustainable design,
		detailed botanical illustrations with leaf patterns, earthy green color palette
		with natural tones, sustainable design with natural textures, environmental
		conservation theme, professional organic layout, natural lighting, serene
		composition, no text`,
	"artistic": `artistic creative event poster excellence, painterly style with visible
		brush strokes, abstract geometric elements, mixed media collage with texture
		layers, textured background with subtle patterns, creative dynamic composition,
		professional art direction, artistic integrity, emotional impact, no text`,
	"tech": `modern tech event poster masterpiece, futuristic innovative design, digital
		circuit board patterns with glowing connections, glowing neon effects with light
		trails, innovative technology theme with data visualization elements,
		professional tech industry design, cybernetic aesthetic, forward-thinking, no text`,
}

const defaultThemeKey = "professional"

var eventTypeFragments = map[string]string{
	"workshop":    "educational workshop poster, creative collaborative learning environment, interactive hands-on session design, skill development focus",
	"conference":  "professional conference poster premium, networking business event, multiple speaker sessions with diverse topics, industry gathering excellence",
	"social":      "social event poster excellence, community gathering celebration, fun engaging atmosphere with connection focus, memorable experience design",
	"sports":      "sports event poster dynamic, athletic competition energy, active lifestyle promotion, team spirit and sportsmanship celebration",
	"cultural":    "cultural festival poster vibrant, traditional artistic elements with modern twist, diverse cultural celebration, heritage and innovation fusion",
	"tech":        "technology conference poster innovative, digital transformation summit, cutting-edge innovation showcase, future trends exploration",
	"seminar":     "educational seminar poster professional, academic knowledge sharing event, professional development focus, expert-led learning experience",
	"competition": "competitive event poster exciting, challenge and achievement celebration, skill demonstration platform, excellence recognition design",
}

const defaultEventTypeFragment = "professional premium event"

var eventLanguage = map[string]string{
	"workshop":    "hands-on learning experience, practical skills, interactive session, expert guidance",
	"conference":  "premier gathering, industry insights, networking opportunities, thought leadership",
	"social":      "memorable gathering, community building, fun activities, social connection",
	"sports":      "competitive spirit, athletic excellence, team camaraderie, sportsmanship",
	"cultural":    "cultural celebration, diverse perspectives, artistic expression, community heritage",
	"tech":        "cutting-edge technology, innovation showcase, future trends, technical excellence",
	"seminar":     "educational opportunity, expert knowledge, professional development, learning growth",
	"competition": "competitive challenge, skill demonstration, achievement recognition, excellence pursuit",
}

const defaultEventLanguage = "professional gathering"

var toneGuides = map[string]string{
	"formal":       "highly professional, corporate tone, formal language, respectful, business-appropriate",
	"casual":       "friendly, conversational tone, approachable language, warm and inviting",
	"enthusiastic": "energetic, exciting tone, persuasive language, creates urgency and excitement",
	"informative":  "clear, detailed, educational tone, focuses on value and benefits, professional yet accessible",
	"fun":          "playful, engaging tone, creative language, entertaining and memorable",
}

const defaultToneGuide = "professional and engaging"

var invitationToneGuides = map[string]string{
	"formal":      "highly formal, black-tie appropriate, sophisticated, traditional elegance",
	"semi-formal": "elegant yet approachable, business professional, refined but welcoming",
	"casual":      "warm and friendly, approachable elegance, comfortable sophistication",
	"festive":     "celebratory and joyful, elegant excitement, sophisticated celebration",
	"corporate":   "professional excellence, business elegance, executive sophistication",
}

const defaultInvitationToneGuide = "elegant and sophisticated"

var designThemeFragments = map[string]string{
	"elegant": `elegant luxury invitation card, gold foil embossing, marble and crystal
		textures, sophisticated modern typography, minimalist luxury design with ample
		white space, black and gold color scheme with deep navy accents, professional
		corporate design, high-end exclusive event, award-winning invitation design`,
	"royal": `royal premium invitation, regal design with crown elements, deep purple and
		gold colors, velvet texture background, ornate borders with intricate patterns,
		luxurious typography, majestic and sophisticated, traditional luxury with modern
		elegance`,
	"modern": `modern minimalist invitation, clean geometric design, sans-serif
		typography, bold color blocks with ample white space, contemporary aesthetic,
		professional grid-based layout, refined color palette with single accent color`,
	"classic": `classic traditional invitation, vintage design with ornate borders, serif
		typography with elegant spacing, parchment paper texture, traditional color
		scheme with deep reds and golds, timeless elegance`,
	"festive": `festive celebration invitation, vibrant colors with confetti elements,
		joyful and energetic design, party atmosphere with celebration motifs, bold
		typography with fun elements, colorful and engaging layout`,
	"professional": `professional corporate invitation, business conference design, clean
		modern layout with perfect alignment, sophisticated typography, brand-aligned
		design system, executive luxury event`,
}

const defaultDesignThemeKey = "elegant"

var realismFragments = map[string]string{
	"high": `photorealistic, physically based rendering, natural materials, soft global
		illumination, realistic shadows, lens-based bokeh, depth of field, subtle film
		grain, calibrated white balance`,
	"medium": "highly realistic, soft lighting, subtle reflections, balanced contrast, gentle depth of field",
	"low":    "stylized realism, clean lighting, moderate texture detail",
}

const defaultRealismKey = "high"

var cameraFragments = map[string]string{
	"prime":     "shot on 50mm prime lens, f/2.8 aperture, cinematic color grading",
	"wide":      "shot on 24mm wide-angle lens, dramatic perspective, f/4.0",
	"telephoto": "shot on 85mm lens, compressed perspective, creamy bokeh, f/2.0",
}

const defaultCameraKey = "prime"

var materialFragments = map[string]string{
	"paper":    "fine paper fibers micro-texture, matte finish",
	"metallic": "subtle metallic sheen, brushed metal micro-texture",
	"glass":    "subsurface scattering in glass, faint reflections",
	"fabric":   "woven fabric micro-texture, tactile surface",
	"none":     "",
}

const qualityEnhancers = `masterpiece, best quality, 8k resolution, ultra detailed,
	professional photography, cinematic lighting, perfect proportions, award-winning
	design, trending on artstation`

const negativePromptText = `blurry, low quality, worst quality, bad quality, lowres, text,
	words, letters, watermark, signature, username, artist name, error, cropped, jpeg
	artifacts, deformed, ugly, bad anatomy, bad proportions, extra limbs, cloned face,
	disfigured, gross proportions, malformed limbs, missing arms, missing legs, extra
	arms, extra legs, fused fingers, too many fingers, long neck, poorly drawn, poorly
	drawn hands, poorly drawn face, mutation, mutated, amateur, cartoon, anime,
	oversaturated, oversmooth, compression artifacts, harsh vignette, excessive blur`
