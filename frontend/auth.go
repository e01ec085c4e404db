package frontend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wansing/blog/core"
	"github.com/wansing/blog/metrics"
)

var signupTmpl = tmpl("Sign Up", `<h1>Sign Up</h1>
	<form method="post">
		<label>First name
			<input type="text" name="first_name" value="{{ .Form.FirstName }}" maxlength="30" required autofocus>
		</label>
		<label>Last name
			<input type="text" name="last_name" value="{{ .Form.LastName }}" maxlength="150" required>
		</label>
		<label>Username
			<input type="text" name="username" value="{{ .Form.Username }}" maxlength="150" required>
		</label>
		<label>Email
			<input type="email" name="email" value="{{ .Form.Email }}" maxlength="254" required>
		</label>
		<label>Password
			<input type="password" name="password1" required>
		</label>
		<label>Password confirmation
			<input type="password" name="password2" required>
		</label>
		<p>
			<button type="submit">Sign Up</button>
		</p>
	</form>
	<p>Already have an account? <a href="login/">Log in</a></p>`)

type signupData struct {
	*Request
	Form *core.SignupForm
}

func signup(w http.ResponseWriter, r *http.Request, req *Request, _ httprouter.Params) error {

	var form = &core.SignupForm{}

	switch {
	case req.LoggedIn():
		req.SeeOther(core.HomePath)
		return nil
	case r.Method == http.MethodPost:
		form = &core.SignupForm{
			FirstName: r.PostFormValue("first_name"),
			LastName:  r.PostFormValue("last_name"),
			Username:  r.PostFormValue("username"),
			Email:     r.PostFormValue("email"),
			Password1: r.PostFormValue("password1"),
			Password2: r.PostFormValue("password2"),
		}
		result, err := req.f.DB.Signup(r.Context(), req.User, form)
		if err != nil {
			metrics.RecordWorkflow("signup", metrics.Failure)
			return err
		}
		metrics.RecordWorkflow("signup", outcome(result))
		if err := req.apply(result); err != nil {
			return err
		}
		if req.statusWritten {
			return nil
		}
		// form is re-rendered, passwords have been cleared
	}

	return signupTmpl.Execute(w, &signupData{
		Request: req,
		Form:    form,
	})
}

var loginTmpl = tmpl("Log In", `<h1>Log In</h1>
	<form method="post">
		<label>Username or email
			<input type="text" name="username" value="{{ .Form.Identifier }}" required autofocus>
		</label>
		<label>Password
			<input type="password" name="password" required>
		</label>
		<p>
			<button type="submit">Log In</button>
		</p>
	</form>
	<p>Don't have an account? <a href="signup/">Sign up</a></p>`)

type loginData struct {
	*Request
	Form *core.LoginForm
}

func login(w http.ResponseWriter, r *http.Request, req *Request, _ httprouter.Params) error {

	var form = &core.LoginForm{}

	switch {
	case req.LoggedIn():
		req.SeeOther(core.HomePath)
		return nil
	case r.Method == http.MethodPost:
		form = &core.LoginForm{
			Identifier: r.PostFormValue("username"),
			Password:   r.PostFormValue("password"),
		}
		result, err := req.f.DB.Login(r.Context(), req.User, form)
		if err != nil {
			metrics.RecordWorkflow("login", metrics.Failure)
			return err
		}
		metrics.RecordWorkflow("login", outcome(result))
		if err := req.apply(result); err != nil {
			return err
		}
		if req.statusWritten {
			return nil
		}
		// keep POST data for the username field
	}

	return loginTmpl.Execute(w, &loginData{
		Request: req,
		Form:    form,
	})
}

func logout(w http.ResponseWriter, r *http.Request, req *Request, _ httprouter.Params) error {
	result := req.f.DB.Logout(r.Context(), req.User)
	metrics.RecordWorkflow("logout", outcome(result))
	return req.apply(result)
}
