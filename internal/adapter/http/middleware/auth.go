package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"mealweek/pkg"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextCustomerID = "customerID"
	ContextUserEmail  = "userEmail"
	ContextUserRole   = "userRole"
)

// RoleCustomer is the role expected on the customer-facing submission path.
const RoleCustomer = "customer"

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// Auth validates the Bearer token and attaches the caller's identity
// (customer id, email, role) to the request context. Requests without a
// valid identity are rejected with 401 before any pricing work happens.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}

		customerID, email, role, err := validateToken(parts[1])
		if err != nil {
			appErr := pkg.NewDomainError("UNAUTHORIZED", "Invalid bearer token", err, http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(ContextCustomerID, customerID)
		c.Set(ContextUserEmail, email)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in the allowed
// set with 403.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this operation", http.StatusForbidden)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func validateToken(tokenString string) (customerID, email, role string, err error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", "", "", errors.New("JWT_SECRET is not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return "", "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", "", errors.New("unexpected claims type")
	}

	customerID, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)
	if customerID == "" {
		return "", "", "", errors.New("token is missing sub claim")
	}
	return customerID, email, role, nil
}
