package web

import "html/template"

// Server-rendered stand-ins for the dashboard screens. Field errors render
// next to their input; Toast is the page-level fallback.
const pageTemplates = `
{{define "layout_head"}}<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>TaskFlow</title></head>
<body>
{{if .Toast}}<p class="toast">{{.Toast}}</p>{{end}}
{{end}}

{{define "layout_foot"}}</body></html>{{end}}

{{define "landing"}}{{template "layout_head" .}}
<h1>TaskFlow</h1>
<p>Manage your projects with TaskFlow.</p>
<p><a href="/login">Sign in</a> or <a href="/register">create an account</a>.</p>
{{template "layout_foot" .}}{{end}}

{{define "login"}}{{template "layout_head" .}}
<h1>Welcome back</h1>
<form method="post" action="/login">
  <label>Email <input type="email" name="email" value="{{.Email}}"></label>
  {{with .Fields.email}}<p class="field-error">{{.}}</p>{{end}}
  <label>Password <input type="password" name="password"></label>
  {{with .Fields.password}}<p class="field-error">{{.}}</p>{{end}}
  <button type="submit">Sign in</button>
</form>
<p><a href="/register">Create an account</a></p>
{{template "layout_foot" .}}{{end}}

{{define "register"}}{{template "layout_head" .}}
<h1>Create your account</h1>
<form method="post" action="/register">
  <label>Username <input name="username" value="{{.Username}}"></label>
  <label>Email <input type="email" name="email" value="{{.Email}}"></label>
  <label>First name <input name="firstName" value="{{.FirstName}}"></label>
  <label>Last name <input name="lastName" value="{{.LastName}}"></label>
  <label>Password <input type="password" name="password"></label>
  <button type="submit">Register</button>
</form>
{{template "layout_foot" .}}{{end}}

{{define "dashboard"}}{{template "layout_head" .}}
<h1>Dashboard</h1>
<p>Signed in as {{.User.FirstName}} {{.User.LastName}} ({{.User.Email}})</p>
<p><a href="/dashboard/settings">Settings</a></p>
<form method="post" action="/logout"><button type="submit">Log out</button></form>
{{template "layout_foot" .}}{{end}}

{{define "settings"}}{{template "layout_head" .}}
<h1>Settings</h1>
<form method="post" action="/dashboard/settings">
  <label>First name <input name="firstName" value="{{.User.FirstName}}"></label>
  <label>Last name <input name="lastName" value="{{.User.LastName}}"></label>
  <label>Phone <input name="phone" value="{{.User.Phone}}"></label>
  <label>Bio <textarea name="bio">{{.User.Bio}}</textarea></label>
  <button type="submit">Save</button>
</form>
<p><a href="/dashboard">Back to dashboard</a></p>
{{template "layout_foot" .}}{{end}}
`

func Templates() *template.Template {
	return template.Must(template.New("pages").Parse(pageTemplates))
}
