// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package assistant

import "strings"

// rule maps trigger keywords to a canned answer. First match wins.
type rule struct {
	keywords []string
	answer   string
}

var rules = []rule{
	{
		keywords: []string{"sleep"},
		answer:   "For better sleep, try to maintain a consistent schedule, create a relaxing bedtime routine, limit screen time before bed, and ensure your bedroom is dark, quiet, and cool. Aim for 7-8 hours of sleep each night.",
	},
	{
		keywords: []string{"workout", "exercise"},
		answer:   "For beginners, I recommend starting with a mix of cardio (walking, cycling) and basic strength exercises like squats, push-ups, and planks. Start with 20-30 minutes, 3 times a week, and gradually increase as you build stamina.",
	},
	{
		keywords: []string{"water"},
		answer:   "The general recommendation is to drink about 8 glasses (64 ounces) of water daily, but your needs may vary based on activity level, climate, and overall health. A good rule is to drink when thirsty and aim for pale yellow urine color.",
	},
	{
		keywords: []string{"breakfast", "meal"},
		answer:   "Healthy breakfast options include oatmeal with fruits, Greek yogurt with nuts and berries, whole grain toast with avocado, or a vegetable omelet. Try to include protein, fiber, and healthy fats for sustained energy.",
	},
	{
		keywords: []string{"stress"},
		answer:   "To reduce stress naturally, try deep breathing exercises, regular physical activity, meditation, limiting caffeine and alcohol, and ensuring adequate sleep. Setting boundaries and practicing mindfulness can also help manage daily stressors.",
	},
}

// fallbackAnswer covers anything no rule matches.
const fallbackAnswer = "I understand you're asking about health advice. While I can provide general wellness information, always consult with healthcare professionals for personalized medical guidance. Is there a specific health topic you'd like to learn more about?"

// Respond returns the canned answer for a user message.
func Respond(input string) string {
	lowered := strings.ToLower(input)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.answer
			}
		}
	}
	return fallbackAnswer
}
