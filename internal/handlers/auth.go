package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/devtemiloluwa/translator-app/internal/models"
	"github.com/devtemiloluwa/translator-app/internal/store"
	"github.com/devtemiloluwa/translator-app/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func (h *Handler) Signup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	userID, err := h.Users.Create(c.UserContext(), user)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "User already exists with this email")
		}
		logrus.WithError(err).Error("failed to create user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"userId":  userID.Hex(),
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.Users.ByEmail(c.UserContext(), req.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.signToken(user.ID.Hex())
	if err != nil {
		logrus.WithError(err).Error("failed to sign token")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *fiber.Ctx) error {
	userID, ok := sessionUserID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := h.Users.ByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		logrus.WithError(err).Error("failed to load user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (h *Handler) signToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	return token.SignedString(h.JWTSecret)
}

// RequireAuth resolves the session and rejects the request without one.
func (h *Handler) RequireAuth(c *fiber.Ctx) error {
	userID, ok := h.resolveSession(c)
	if !ok {
		return utils.FailResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	c.Locals("userId", userID)
	return c.Next()
}

// OptionalAuth resolves the session when present and lets the request through
// either way.
func (h *Handler) OptionalAuth(c *fiber.Ctx) error {
	if userID, ok := h.resolveSession(c); ok {
		c.Locals("userId", userID)
	}
	return c.Next()
}

func (h *Handler) resolveSession(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	userID, ok := claims["userId"].(string)
	return userID, ok && userID != ""
}

// sessionUserID reads the user id the auth middleware resolved, if any.
func sessionUserID(c *fiber.Ctx) (primitive.ObjectID, bool) {
	userID, _ := c.Locals("userId").(string)
	if userID == "" {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
