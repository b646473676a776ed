/*
Package events provides an in-process publish/subscribe broker for
ticket and user lifecycle events.

The auth and ticket managers publish an event after every successful
mutation (ticket.created, user.logged_in, ...). Subscribers receive
events on buffered channels; a subscriber that falls behind has events
dropped rather than blocking the publisher. The CLI attaches a
subscriber that mirrors events into the debug log.
*/
package events
