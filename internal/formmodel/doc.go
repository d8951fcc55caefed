// Package formmodel holds the typed, validated snapshots derived from
// raw UI form state: the file-selection form and the registration
// demo form, plus the extension-based path classification that decides
// which auxiliary fields (the sheet selector) a host should show.
//
// Models are pure data in / data out: the host collects strings and
// selections, builds a snapshot, reads back classifications and
// validation results, and discards the snapshot. Nothing here imports
// a UI toolkit or performs I/O.
package formmodel
