package runtime

import "github.com/resultflow/careflow/pkg/domain"

// Scripted assistant copy. The conversation engine is a fixed script plus a
// keyword fallback; all user-facing text lives here so the state machine
// code stays free of copy.

const welcomeText = "Welcome to Hims! I'm your personal wellness advisor. " +
	"I can help you find the right solutions for hair care and skin concerns. " +
	"What would you like to focus on improving today?"

const (
	categoryEchoHair = "Hair care solutions"
	categoryEchoSkin = "Skin care treatments"

	concernPromptHair = "Let's find your perfect hair care solution. Which of these concerns would you like to address?"
	concernPromptSkin = "Let's create your personalized skincare routine. Which areas would you like to improve?"

	recommendationIntroHair = "Perfect! I've selected these clinically-proven hair treatments specifically for your needs. " +
		"These are the same solutions that have helped thousands of men achieve thicker, healthier hair:"
	recommendationIntroSkin = "Based on your skin concerns, I've curated these dermatologist-recommended treatments. " +
		"These are our most effective solutions for achieving healthier, better-looking skin:"
)

const (
	pivotFromHair = "Complete your self-care routine! 👨‍⚕️\n\n" +
		"While you're enhancing your hair care, many of our customers also achieve great results with our " +
		"dermatologist-recommended skincare treatments. Ready to discover personalized solutions for clearer, healthier skin?\n\n" +
		"Which skin concerns would you like to address?"
	pivotFromSkin = "Enhance your wellness journey! 👨‍⚕️\n\n" +
		"While we're improving your skin, did you know that many of our customers also benefit from our " +
		"scientifically-proven hair care treatments? Let's ensure you're looking and feeling your best.\n\n" +
		"Which hair concerns would you like to address?"
)

const (
	mechanismHair = "Our hair care treatments work through a combination of:\n\n" +
		"• DHT blocking to prevent further hair loss\n" +
		"• Growth stimulation to promote new hair growth\n" +
		"• Nutrient supplementation for overall hair health\n\n" +
		"Would you like to try any of our recommended products?"
	mechanismSkin = "Our skin care treatments work through:\n\n" +
		"• Targeted active ingredients\n" +
		"• Clinically proven formulations\n" +
		"• Gentle yet effective approach\n\n" +
		"Would you like to try any of our recommended products?"

	helpMenu = "I'm here to help you achieve your wellness goals! Feel free to ask about:\n\n" +
		"• How our treatments are scientifically formulated\n" +
		"• Expected timeline for results\n" +
		"• Usage and application tips\n" +
		"• Success stories and clinical results\n" +
		"• Combining treatments for optimal results"
)

// CategoryOptions is the option panel shown before a category is chosen.
var CategoryOptions = []domain.ConcernOption{
	{ID: "hair", Label: categoryEchoHair, Value: string(domain.CategoryHair)},
	{ID: "skin", Label: categoryEchoSkin, Value: string(domain.CategorySkin)},
}

// HairConcerns and SkinConcerns are the concern panels per vertical.
var HairConcerns = []domain.ConcernOption{
	{ID: "1", Label: "Hair thinning or loss", Value: "thinning"},
	{ID: "2", Label: "Receding hairline", Value: "receding"},
	{ID: "3", Label: "Slow hair growth", Value: "slow_growth"},
	{ID: "4", Label: "Scalp issues", Value: "scalp"},
}

var SkinConcerns = []domain.ConcernOption{
	{ID: "1", Label: "Acne or breakouts", Value: "acne"},
	{ID: "2", Label: "Signs of aging", Value: "aging"},
	{ID: "3", Label: "Uneven skin tone", Value: "uneven"},
	{ID: "4", Label: "Dark spots", Value: "dark_spots"},
}

// ConcernsFor returns the concern panel for a category.
func ConcernsFor(category domain.Category) []domain.ConcernOption {
	if category == domain.CategorySkin {
		return SkinConcerns
	}
	return HairConcerns
}

// concernLabel resolves a concern value to its human-readable label,
// falling back to the raw value when unmapped.
func concernLabel(category domain.Category, value string) string {
	for _, opt := range ConcernsFor(category) {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

func categoryEcho(category domain.Category) string {
	if category == domain.CategoryHair {
		return categoryEchoHair
	}
	return categoryEchoSkin
}

func concernPrompt(category domain.Category) string {
	if category == domain.CategoryHair {
		return concernPromptHair
	}
	return concernPromptSkin
}

func recommendationIntro(category domain.Category) string {
	if category == domain.CategoryHair {
		return recommendationIntroHair
	}
	return recommendationIntroSkin
}

func pivotCopy(from domain.Category) string {
	if from == domain.CategoryHair {
		return pivotFromHair
	}
	return pivotFromSkin
}
