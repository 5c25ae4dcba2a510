package plan

import (
	"context"
	"strings"
	"testing"

	"beli-at-home/internal/infrastructure/config"
	"beli-at-home/internal/pkg/common"
)

// fakeCompleter 記下收到的請求並回固定內容
type fakeCompleter struct {
	reply string
	err   error
	calls []common.CompletionRequest
}

func (f *fakeCompleter) Complete(ctx context.Context, req common.CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Anthropic: config.AnthropicConfig{
			RecipeTokens:    2000,
			PlanTokens:      3000,
			QuickBiteTokens: 1024,
		},
		Image: config.ImageConfig{MaxSizeBytes: 10 * 1024 * 1024},
	}
}

const recipeJSON = `{
  "dish": "Pad Thai",
  "restaurant": "Thai Palace",
  "restaurant_price": 16,
  "home_price": 4.5,
  "savings": 11.5,
  "savings_percent": 72,
  "time_mins": 30,
  "difficulty": "Medium",
  "servings": 2,
  "ingredients": ["8 oz rice noodles", "1 lb shrimp"],
  "steps": ["Soak noodles", "Stir fry"],
  "grocery_list": [
    {"item": "Rice Noodles", "qty": "8 oz", "cost": 2.49},
    {"item": "Shrimp", "qty": "1 lb", "cost": 8.99}
  ]
}`

func TestGenerateRecipeFromText(t *testing.T) {
	ai := &fakeCompleter{reply: recipeJSON}
	s := NewRecipeService(testConfig(), ai)

	recipe, err := s.Generate(context.Background(), common.DishInput{Type: "text", Text: "pad thai"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if recipe.Dish != "Pad Thai" || recipe.Servings != 2 || len(recipe.GroceryList) != 2 {
		t.Errorf("recipe = %+v, want parsed Pad Thai", recipe)
	}

	if len(ai.calls) != 1 {
		t.Fatalf("completer calls = %d, want 1", len(ai.calls))
	}
	req := ai.calls[0]
	if req.UserText != "User wants to make: pad thai" {
		t.Errorf("UserText = %q", req.UserText)
	}
	if req.MaxTokens != 2000 {
		t.Errorf("MaxTokens = %d, want 2000", req.MaxTokens)
	}
	if !strings.Contains(req.System, "Empty Beli") {
		t.Error("system prompt missing")
	}
}

func TestGenerateRecipeHandlesCodeFence(t *testing.T) {
	ai := &fakeCompleter{reply: "```json\n" + recipeJSON + "\n```"}
	s := NewRecipeService(testConfig(), ai)

	recipe, err := s.Generate(context.Background(), common.DishInput{Type: "text", Text: "pad thai"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if recipe.Dish != "Pad Thai" {
		t.Errorf("Dish = %q, want Pad Thai", recipe.Dish)
	}
}

func TestGenerateRecipeFromImage(t *testing.T) {
	ai := &fakeCompleter{reply: recipeJSON}
	s := NewRecipeService(testConfig(), ai)

	_, err := s.Generate(context.Background(), common.DishInput{
		Type:        "image",
		ImageBase64: "data:image/jpeg;base64,aGVsbG8=",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := ai.calls[0]
	if req.Image == nil {
		t.Fatal("request has no image block")
	}
	if req.Image.MediaType != "image/jpeg" || req.Image.Base64Data != "aGVsbG8=" {
		t.Errorf("image block = %+v", req.Image)
	}
	if !strings.Contains(req.UserText, "What dish is in this photo?") {
		t.Errorf("UserText = %q", req.UserText)
	}
}

func TestGenerateRecipeValidation(t *testing.T) {
	cases := []struct {
		name  string
		input common.DishInput
	}{
		{"empty text", common.DishInput{Type: "text", Text: ""}},
		{"blank text", common.DishInput{Type: "text", Text: "   "}},
		{"missing image", common.DishInput{Type: "image"}},
		{"bad data URL", common.DishInput{Type: "image", ImageBase64: "not-a-data-url"}},
		{"unknown type", common.DishInput{Type: "voice", Text: "pad thai"}},
	}
	for _, tc := range cases {
		ai := &fakeCompleter{reply: recipeJSON}
		s := NewRecipeService(testConfig(), ai)

		_, err := s.Generate(context.Background(), tc.input)
		if !common.IsValidationError(err) {
			t.Errorf("%s: error = %v, want validation error", tc.name, err)
		}
		// 驗證失敗不可打上游
		if len(ai.calls) != 0 {
			t.Errorf("%s: completer called %d times, want 0", tc.name, len(ai.calls))
		}
	}
}

func TestGenerateRecipeParseFailure(t *testing.T) {
	ai := &fakeCompleter{reply: "Sorry, I can't help with that."}
	s := NewRecipeService(testConfig(), ai)

	_, err := s.Generate(context.Background(), common.DishInput{Type: "text", Text: "pad thai"})
	if err != common.ErrAIParse {
		t.Errorf("error = %v, want ErrAIParse", err)
	}
}

func TestGenerateRecipePropagatesCompleterError(t *testing.T) {
	ai := &fakeCompleter{err: common.ErrMissingAPIKey}
	s := NewRecipeService(testConfig(), ai)

	_, err := s.Generate(context.Background(), common.DishInput{Type: "text", Text: "pad thai"})
	if err != common.ErrMissingAPIKey {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}
