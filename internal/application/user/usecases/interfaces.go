package usecases

// TokenService issues signed access tokens for authenticated users.
type TokenService interface {
	Generate(userID uint) (string, error)
}
