package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Anupamgithub3/Food-Delivery-site/internal/model"
	"github.com/Anupamgithub3/Food-Delivery-site/internal/store"
)

// Identity is what a verified token resolves to. Handlers pass it explicitly
// into every service call; nothing reads the account record again to learn
// the role.
type Identity struct {
	ID   primitive.ObjectID
	Role string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Img      string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, model.User, error)
	Login(ctx context.Context, email, password string) (string, model.User, error)
	ParseToken(token string) (Identity, error)
}

type authService struct {
	users  store.UserStore
	secret []byte
}

func NewAuthService(users store.UserStore, secret []byte) AuthService {
	return &authService{users: users, secret: secret}
}

// tokenTTL is effectively non-expiring; sessions outlive the deployment.
const tokenTTL = 100 * 365 * 24 * time.Hour

func (a *authService) Register(ctx context.Context, in RegisterInput) (string, model.User, error) {
	if in.Email == "" || in.Password == "" {
		return "", model.User{}, BadRequest("email and password are required")
	}

	_, err := a.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return "", model.User{}, Conflict("Email is already in use.")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", model.User{}, err
	}
	u := model.User{
		Name:       in.Name,
		Email:      in.Email,
		Password:   string(hash),
		Img:        in.Img,
		Role:       model.RoleCustomer,
		Cart:       []model.CartItem{},
		Favourites: []primitive.ObjectID{},
		Orders:     []primitive.ObjectID{},
	}
	if err := a.users.Create(ctx, &u); err != nil {
		return "", model.User{}, err
	}

	token, err := a.sign(u)
	if err != nil {
		return "", model.User{}, err
	}
	return token, u, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (string, model.User, error) {
	u, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return "", model.User{}, NotFound("This Account Does not exist")
	}
	if err != nil {
		return "", model.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", model.User{}, Forbidden("Incorrect password")
	}

	token, err := a.sign(u)
	if err != nil {
		return "", model.User{}, err
	}
	return token, u, nil
}

func (a *authService) sign(u model.User) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   u.ID.Hex(),
		"role": u.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	})
	return t.SignedString(a.secret)
}

func (a *authService) ParseToken(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return Identity{}, Unauthorized("You are not authenticated!")
	}

	idHex, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return Identity{}, Unauthorized("You are not authenticated!")
	}
	return Identity{ID: id, Role: role}, nil
}
