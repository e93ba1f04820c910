package dto

type AdminLoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserDTO struct {
	ID        uint64  `json:"id"`
	Nickname  string  `json:"nickname"`
	Email     *string `json:"email"`
	AvatarURL string  `json:"avatarUrl"`
	Role      string  `json:"role"`
}

type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
