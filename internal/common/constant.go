package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"

// GenericForgotPasswordMessage is returned by the forgot-password operation on
// every branch, whether or not the email maps to an account.
const GenericForgotPasswordMessage = "If the email exists, we will send instructions to reset the password."
