// Package engines discovers installed engines under a root directory and
// builds the catalog a presentation layer reads from.
//
// Each direct subdirectory of the root is one engine. Its metadata lives in
// a meta.json sidecar; when the sidecar is missing a template is written so
// users have something to edit:
//
//	root/
//	  godot/
//	    meta.json        {"display_name":"Godot","source_code":null,...}
//	    4.2/             version folders (reserved)
//	    mods/            modpacks (reserved)
//
// A catalog is built once:
//
//	scanner := engines.NewScanner(engines.WithSelected(0))
//	cat, err := scanner.Scan(ctx, "/home/me/.local/share/dropfunk/engines")
//	if err != nil {
//	    return err
//	}
//	for _, f := range cat.Failures() {
//	    log.Warn().Str("dir", f.Dir).Err(f.Err).Msg("skipped")
//	}
//
// An empty catalog is a valid result, not an error.
package engines
