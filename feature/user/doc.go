// Package user implements account registration, login and deletion.
//
// Passwords are stored as bcrypt hashes. Login issues a long-lived bearer
// token whose subject is the account id; the auth middleware resolves it
// back to the stored user on every protected request. Deleting an account
// cascades to the user's games and their item levels in one transaction.
//
// # HTTP Endpoints
//
//   - POST   /user        : Register (public).
//   - POST   /user/login  : Login, returns {"access_token": ...} (public).
//   - GET    /user        : Profile of the authenticated user.
//   - DELETE /user        : Delete the authenticated account.
package user
