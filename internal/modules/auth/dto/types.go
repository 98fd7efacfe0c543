package dto

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

type UserInput struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	IsAdmin   bool
}

type SessionOutput struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	IsAdmin   bool
	Token     string
}
