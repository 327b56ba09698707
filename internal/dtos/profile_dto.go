package dtos

type ProfileRequest struct {
	FullName string   `json:"full_name" binding:"required"`
	Title    string   `json:"title"`
	Bio      string   `json:"bio"`
	Skills   []string `json:"skills"`
	City     string   `json:"city"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	CVURL    string   `json:"cv_url"`
}
