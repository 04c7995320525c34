// Package backlog holds the state behind one page of the backlog creator:
// the last search results, the ordered selection of rated games, the rating
// modal and pending spreadsheet downloads.
//
// A Session is the application-state object for one page load. It is safe for
// concurrent use; everything it owns is guarded by its mutex, and network
// calls are made outside that lock so a slow search never blocks rating edits.
package backlog
