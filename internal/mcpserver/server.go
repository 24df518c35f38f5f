// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes notebook tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/laguz/internal/notebook"
)

// Server wraps the MCP server with notebook tools.
type Server struct {
	mcp *server.MCPServer
	db  *notebook.DB
}

// New creates a new MCP server with all notebook tools registered.
func New(db *notebook.DB) *Server {
	s := &Server{db: db}

	s.mcp = server.NewMCPServer(
		"Laguz",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("add_note",
		mcp.WithDescription("Add a new note under a unique notename."),
		mcp.WithString("notename", mcp.Required(), mcp.Description("Unique name for the note")),
		mcp.WithString("note", mcp.Description("Note content (may be empty)")),
	), s.addNote)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read a note by its notename."),
		mcp.WithString("notename", mcp.Required(), mcp.Description("Name of the note to read")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List every note in the notebook."),
	), s.listNotes)

	s.mcp.AddTool(mcp.NewTool("update_note",
		mcp.WithDescription("Replace the content of an existing note."),
		mcp.WithString("notename", mcp.Required(), mcp.Description("Name of the note to update")),
		mcp.WithString("note", mcp.Required(), mcp.Description("New note content")),
	), s.updateNote)

	s.mcp.AddTool(mcp.NewTool("rename_note",
		mcp.WithDescription("Change a note's notename, keeping its content."),
		mcp.WithString("notename", mcp.Required(), mcp.Description("Current notename")),
		mcp.WithString("new_notename", mcp.Required(), mcp.Description("New notename")),
	), s.renameNote)

	s.mcp.AddTool(mcp.NewTool("delete_note",
		mcp.WithDescription("Delete a note by its notename."),
		mcp.WithString("notename", mcp.Required(), mcp.Description("Name of the note to delete")),
	), s.deleteNote)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) addNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("notename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content := req.GetString("note", "")

	note, err := s.db.Create(name, content)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("added: %s (id %d)", note.Name, note.ID)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("notename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.db.Get(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(note.Note), nil
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes, err := s.db.GetAll()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(notes, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) updateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("notename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("note")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.db.Update(name, content)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("updated: %s", note.Name)), nil
}

func (s *Server) renameNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("notename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newName, err := req.RequireString("new_notename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	note, err := s.db.Rename(name, newName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("renamed: %s -> %s", name, note.Name)), nil
}

func (s *Server) deleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("notename")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.db.Delete(name); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted: %s", name)), nil
}
