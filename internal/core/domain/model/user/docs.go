// Package user contains the User aggregate and the Role enum. Users are
// read-mostly in this service: accounts are provisioned elsewhere and the
// booking flows only consult role, languages, and the push token.
package user
