package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Register
// @Description	Creates a new user account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	RegisterResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/register [post]
func Register(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user := models.User{
		Name:  editable.Name,
		Email: editable.Email,
	}

	err = user.SetPassword(editable.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{Data: newUser(user)})
}

// @Summary		Login
// @Description	Verifies the credentials and starts a session
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/ [post]
func Login(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user, err := models.UserByEmail(editable.Email)
	if err != nil || !user.CheckPassword(editable.Password) {
		// Same response for unknown email and wrong password
		c.JSON(status(errCredentialsInvalid), httpError{Error: errCredentialsInvalid.Error()})
		return
	}

	token, err := newSessionToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.SetCookie(SessionCookieName, token, int(sessionLifetime.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, LoginResponse{Token: token, Data: newUser(user)})
}

// @Summary		Logout
// @Description	Clears the session cookie
// @Tags			Auth
// @Success		204
// @Router			/logout [get]
func Logout(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
