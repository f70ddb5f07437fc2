package domain

// FacebookConnectInput é a entrada do fluxo via Facebook Login
type FacebookConnectInput struct {
	UserID string `json:"user_id" validate:"required"`
	Code   string `json:"code" validate:"required,min=10,max=1000"`
}

// InstagramConnectInput é a entrada do fluxo direto do Instagram (ou provider=facebook)
type InstagramConnectInput struct {
	UserID   string   `json:"user_id" validate:"required"`
	Code     string   `json:"code" validate:"required,min=10,max=1000"`
	Provider Provider `json:"provider" validate:"oauth_provider"`
}

// OAuthToken é o resultado de uma troca de código ou de um upgrade para long-lived
type OAuthToken struct {
	AccessToken string
	ExpiresIn   int64
	// UserID só vem na troca do Instagram direto
	UserID string
}

// FacebookPage é uma página do usuário com a conta business vinculada, se houver
type FacebookPage struct {
	ID                         string
	Name                       string
	AccessToken                string
	InstagramBusinessAccountID string
}

// ConnectResult é o envelope de sucesso dos endpoints de OAuth
type ConnectResult struct {
	Success           bool     `json:"success"`
	Provider          Provider `json:"provider"`
	InstagramUserID   string   `json:"instagram_user_id"`
	Username          string   `json:"username,omitempty"`
	Name              string   `json:"name,omitempty"`
	ProfilePictureURL string   `json:"profile_picture_url,omitempty"`
	PageName          string   `json:"page_name,omitempty"`
}
