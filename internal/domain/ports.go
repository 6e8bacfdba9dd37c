package domain

import "context"

// SignupParams is the payload for account creation.
type SignupParams struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

// RecipeParams is the payload for recipe create/update. Update sends
// the same fields as a partial overwrite of the existing record.
type RecipeParams struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	CookingTime  int    `json:"cooking_time"`
	ImageURL     string `json:"image_url,omitempty"`
}

// UserParams is the payload for profile updates. When PicturePath names
// a local file the update is sent as multipart, otherwise as JSON.
type UserParams struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Bio         string `json:"bio"`
	PicturePath string `json:"-"`
}

// API is the remote backend as seen by the client. The single HTTP
// implementation lives in internal/api; tests substitute fakes.
type API interface {
	// Session.
	CheckSession(ctx context.Context) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	Signup(ctx context.Context, params SignupParams) (*User, error)
	Logout(ctx context.Context) error

	// Recipes.
	ListRecipes(ctx context.Context) ([]Recipe, error)
	GetRecipe(ctx context.Context, id int) (*Recipe, error)
	UserRecipes(ctx context.Context, userID int) ([]Recipe, error)
	CreateRecipe(ctx context.Context, params RecipeParams) (*Recipe, error)
	UpdateRecipe(ctx context.Context, id int, params RecipeParams) (*Recipe, error)
	DeleteRecipe(ctx context.Context, id int) error

	// Likes and favorites.
	Like(ctx context.Context, recipeID int) error
	Unlike(ctx context.Context, recipeID int) error
	Favorite(ctx context.Context, recipeID int) error
	Unfavorite(ctx context.Context, recipeID int) error
	UserFavorites(ctx context.Context, userID int) ([]FavoriteEntry, error)

	// Comments.
	RecipeComments(ctx context.Context, recipeID int) ([]Comment, error)
	PostComment(ctx context.Context, recipeID int, content string) (*Comment, error)
	DeleteComment(ctx context.Context, commentID int) error

	// Users.
	GetUser(ctx context.Context, id int) (*User, error)
	UpdateUser(ctx context.Context, id int, params UserParams) (*User, error)

	// Notifications.
	UserNotifications(ctx context.Context, userID int) ([]Notification, error)
	MarkNotificationRead(ctx context.Context, id int) error
}
