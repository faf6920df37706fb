package prompt

import "github.com/fuelflow/meal-analyzer/llm"

// MealPrompt asks for a nutrition assessment of the pictured meal for a
// specific physiological context.
const MealPrompt = "Analyse how nutritious the meal in this image is for a woman in the luteal phase"

// MealImageURL is the meal photo every analysis is run against.
const MealImageURL = "https://plus.unsplash.com/premium_photo-1669742928112-19364a33b530?fm=jpg&q=60&w=3000&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxzZWFyY2h8MXx8ZGVsaWNpb3VzJTIwZm9vZHxlbnwwfHwwfHx8MA%3D%3D"

func GetMealRequest() llm.Request {
	return llm.Request{
		Prompt:   MealPrompt,
		ImageURL: MealImageURL,
	}
}
