/*
Package tickets implements the record store module: CRUD over the
ticket collection and the derived aggregate counts.

The Manager is constructed over a storage.Store and publishes a
lifecycle event after every successful mutation. Reads return the
collection in insertion order; writes preserve id, sequence and
CreatedAt and refresh UpdatedAt.
*/
package tickets
