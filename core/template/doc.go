// Package template exposes object storage operations over fixed connection settings.
//
// A Template holds the endpoint and credentials it was created with and forwards each
// call (create, list, get and remove buckets; list, upload, stat, download and remove
// objects; presigned and direct URLs) to a storage.Client. It adds no retries,
// timeouts or caching of its own; failures come back as *storage.Error.
//
// # Client Handles
//
// By default one handle is built on first use and shared by all callers. Setting
// storage.Config.ReuseClient to false builds a new handle for every call.
//
// # Configuration
//
// Configure is the single construction point used at startup:
//
//	tpl, ok := template.Configure(cfg.Storage, nil, template.WithLogger(logg))
//	if !ok {
//	    // storage.endpoint is not set, storage features stay disabled
//	}
//
// # Listing
//
// ListObjects returns an iter.Seq2 so a failed listing (missing bucket, denied
// access) reaches the caller rather than being dropped. The error is the last
// value of the sequence:
//
//	for obj, err := range tpl.ListObjects(ctx, "assets", "images/", true) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(obj.Name, obj.Length)
//	}
package template
