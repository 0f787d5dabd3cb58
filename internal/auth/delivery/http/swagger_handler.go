package http

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password, returns a token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{success=bool,message=string,data=object{user=object,accessToken=string,refreshToken=string}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /login [post]
func (h *AuthHandler) LoginDoc() {}

// RefreshToken godoc
// @Summary Rotate a refresh token
// @Description Exchange a valid refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{refreshToken=string} true "Refresh token"
// @Success 200 {object} object{success=bool,message=string,data=object{user=object,accessToken=string,refreshToken=string}}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /refresh-token [post]
func (h *AuthHandler) RefreshTokenDoc() {}

// Logout godoc
// @Summary Log out
// @Description Invalidate the current session's refresh token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /logout [post]
func (h *AuthHandler) LogoutDoc() {}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Send a password reset link to the given email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string} true "Account email"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /forgot-password [post]
func (h *AuthHandler) ForgotPasswordDoc() {}

// ResetPassword godoc
// @Summary Reset password
// @Description Set a new password using a reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{token=string,newPassword=string} true "Reset token and new password"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /reset-password [post]
func (h *AuthHandler) ResetPasswordDoc() {}
