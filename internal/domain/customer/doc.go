// Package customer contains the customer record model: the four free-form
// fields printed on every invoice label, and the ordered record set loaded
// from the backing file.
package customer
