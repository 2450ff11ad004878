package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey       ContextKey = "claims"
	UserIDKey       ContextKey = "user_id"
	RestaurantIDKey ContextKey = "restaurant_id"
)

var (
	ErrNoClaimsInContext       = errors.New("no claims found in context")
	ErrInvalidClaimsType       = errors.New("invalid claims type")
	ErrNoUserIDInClaims        = errors.New("no user_id found in claims")
	ErrInvalidUserIDType       = errors.New("user_id must be a string")
	ErrInvalidRestaurantIDType = errors.New("restaurant_id must be a string")
)

func claimsFromContext(c context.Context) (jwt.MapClaims, error) {
	claims, ok := c.Value(ClaimsKey).(jwt.MapClaims)
	if !ok {
		return nil, ErrNoClaimsInContext
	}
	return claims, nil
}

func GetUserIDFromContext(c context.Context) (string, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return "", err
	}

	userID, exists := claims[string(UserIDKey)]
	if !exists {
		return "", ErrNoUserIDInClaims
	}

	userIDStr, ok := userID.(string)
	if !ok {
		return "", ErrInvalidUserIDType
	}

	return userIDStr, nil
}

// GetRestaurantIDFromContext returns the caller's restaurant ID, or an empty
// string when the claim is absent (super-admins carry no restaurant).
func GetRestaurantIDFromContext(c context.Context) (string, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return "", err
	}

	restaurantID, exists := claims[string(RestaurantIDKey)]
	if !exists || restaurantID == nil {
		return "", nil
	}

	restaurantIDStr, ok := restaurantID.(string)
	if !ok {
		return "", ErrInvalidRestaurantIDType
	}

	return restaurantIDStr, nil
}

// GetRolesFromContext returns the caller's roles; claims serialize the role
// list as []any after JWT decoding.
func GetRolesFromContext(c context.Context) []string {
	claims, err := claimsFromContext(c)
	if err != nil {
		return nil
	}

	rolesAny, exists := claims["roles"]
	if !exists {
		return nil
	}

	rolesList, ok := rolesAny.([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(rolesList))
	for _, r := range rolesList {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
