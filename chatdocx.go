// Package chatdocx converts HTML fragments copied from chat and web pages
// into DOCX documents. It understands headings, paragraphs with bold and
// italic runs, lists, tables and code blocks, and marks each block as
// right-to-left when it contains Arabic text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, yaml/).
package chatdocx
