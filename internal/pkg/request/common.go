package request

// ByIDRequest is a common struct for endpoints that require a numeric ID path parameter.
type ByIDRequest struct {
	ID int `uri:"id" binding:"required,min=1,max=2147483647"`
}
