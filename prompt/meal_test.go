package prompt

import (
	"net/url"
	"testing"
)

func TestGetMealRequest(t *testing.T) {
	req := GetMealRequest()

	if req.Prompt != MealPrompt {
		t.Errorf("Expected meal prompt, got %q", req.Prompt)
	}
	if req.ImageURL != MealImageURL {
		t.Errorf("Expected meal image URL, got %q", req.ImageURL)
	}

	if GetMealRequest() != req {
		t.Error("Expected identical requests on every call")
	}
}

func TestMealImageURLIsAbsoluteHTTPS(t *testing.T) {
	u, err := url.Parse(MealImageURL)
	if err != nil {
		t.Fatalf("Failed to parse image URL: %v", err)
	}
	if u.Scheme != "https" || u.Host == "" {
		t.Errorf("Expected absolute https URL, got %s", MealImageURL)
	}
}
