package igdomain

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// FlexibleID aceita ids numéricos ou em string; o user_id do OAuth do Instagram vem como número
// e não cabe com segurança em float64.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*id = ""
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &str); err != nil {
			return err
		}
		*id = FlexibleID(str)
		return nil
	}

	*id = FlexibleID(s)
	return nil
}

func (id FlexibleID) String() string {
	return string(id)
}

// ShortLivedToken é a resposta de api.instagram.com/oauth/access_token
type ShortLivedToken struct {
	AccessToken  string     `json:"access_token"`
	UserID       FlexibleID `json:"user_id"`
	ErrorType    string     `json:"error_type,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
}

// LongLivedToken é a resposta de graph.instagram.com/access_token
type LongLivedToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Error       *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

type Profile struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	ProfilePictureURL string `json:"profile_picture_url"`
	Error             *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
