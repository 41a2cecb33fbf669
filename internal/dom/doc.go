// Package dom holds the document helpers the diary controller is built on:
// an HTML content tree (parse, clear, text content, first media source,
// append media), list item highlighting and keyword filtering, and the
// asynchronous file-to-data-URL conversion used for attachments.
package dom
