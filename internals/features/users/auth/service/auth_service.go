package service

import (
	"errors"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"tutorku_backend/internals/configs"
	userModel "tutorku_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

// ==========================
// PASSWORD
// ==========================

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// ==========================
// ISSUE TOKENS
// ==========================

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

func IssueTokens(user *userModel.UserModel) (*TokenPair, error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return nil, errors.New("JWT secret belum diset")
	}

	now := time.Now().UTC()
	accessExp := now.Add(accessTTL)

	accessClaims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      string(user.UserRole),
		"iat":       now.Unix(),
		"exp":       accessExp.Unix(),
	}
	refreshClaims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTTL).Unix(),
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, errors.New("gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, errors.New("gagal membuat refresh token")
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExp,
	}, nil
}

// ParseRefreshToken memverifikasi refresh token dan mengembalikan user_id claim.
func ParseRefreshToken(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return "", err
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("refresh token tidak berisi user_id")
	}
	return userID, nil
}

// ==========================
// GOOGLE SIGN-IN
// ==========================

type GoogleProfile struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// VerifyGoogleIDToken memverifikasi ID token dari klien Google Sign-In
// dan mengembalikan profil dasarnya.
func VerifyGoogleIDToken(idToken string) (*GoogleProfile, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, err
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}
	if claimSet.Email == "" {
		return nil, errors.New("ID token tidak berisi email")
	}
	return &GoogleProfile{
		GoogleID: claimSet.Sub,
		Email:    claimSet.Email,
		Name:     claimSet.Name,
		Picture:  claimSet.Picture,
	}, nil
}
