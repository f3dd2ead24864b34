package usecases

type PasswordHasher interface {
	Hash(password string) (string, error)
}
