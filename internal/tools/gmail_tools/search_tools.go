package gmail_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mailfold/gmail-mcp/internal/format"
	"github.com/mailfold/gmail-mcp/internal/gmail"
	"github.com/mailfold/gmail-mcp/internal/logging"
	"github.com/mailfold/gmail-mcp/internal/server"
	"github.com/mailfold/gmail-mcp/internal/tools/batch"
)

func getStringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func getBoolArg(args map[string]interface{}, key string) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return false
}

// searchFilterFromArgs maps the search_emails tool arguments onto a
// SearchFilter. Mutual-exclusion of gmail_query and the structured
// filters is enforced by SearchFilter.Build.
func searchFilterFromArgs(args map[string]interface{}) gmail.SearchFilter {
	filter := gmail.SearchFilter{
		ReadStatus:    gmail.ReadStatus(getStringArg(args, "read_status")),
		FromEmail:     getStringArg(args, "from_email"),
		ToEmail:       getStringArg(args, "to_email"),
		Subject:       getStringArg(args, "subject"),
		AfterDate:     getStringArg(args, "after_date"),
		BeforeDate:    getStringArg(args, "before_date"),
		HasAttachment: getBoolArg(args, "has_attachment"),
		IsStarred:     getBoolArg(args, "is_starred"),
		IsImportant:   getBoolArg(args, "is_important"),
		InTrash:       getBoolArg(args, "in_trash"),
		RawQuery:      getStringArg(args, "gmail_query"),
	}
	if label := getStringArg(args, "label"); label != "" {
		filter.Labels = []string{label}
	}
	return filter
}

func handleSearchEmails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	logger := logging.NewDualLogger(ctx, nil)
	args := request.GetArguments()

	afterDate := getStringArg(args, "after_date")
	if !format.ValidDate(afterDate) {
		return mcp.NewToolResultError(fmt.Sprintf("after_date %q is not in the required format YYYY/MM/DD", afterDate)), nil
	}
	beforeDate := getStringArg(args, "before_date")
	if !format.ValidDate(beforeDate) {
		return mcp.NewToolResultError(fmt.Sprintf("before_date %q is not in the required format YYYY/MM/DD", beforeDate)), nil
	}

	filter := searchFilterFromArgs(args)
	query, err := filter.Build()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Empty query matches everything; name it for the result document.
	queryStr := query
	if queryStr == "" {
		queryStr = "all messages"
	}

	maxResults := int64(sc.Settings().MaxResults)
	if v, ok := args["max_results"].(float64); ok && v > 0 {
		maxResults = int64(v)
	}

	logger.Info("searching emails", logging.KeyQuery, queryStr)

	refs, err := sc.GmailClient().ListMessages(query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search emails: %v", err)), nil
	}

	logger.Info("search matched", "count", len(refs))

	messages := make([]format.MessageWithBody, 0, len(refs))
	metadataList := make([]format.EmailMetadata, 0, len(refs))
	for _, ref := range refs {
		msg, err := sc.GmailClient().GetMessage(ref.Id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch message %s: %v", ref.Id, err)), nil
		}
		messages = append(messages, format.MessageWithBody{Message: msg, Body: gmail.ExtractBody(msg)})
		metadataList = append(metadataList, format.BuildEmailMetadata(msg, ref.Id))
	}

	markdown := format.SearchResultsMarkdown(queryStr, messages)

	filename := fmt.Sprintf("search_%s_%d_results.md", queryStr, len(messages))
	handle, err := sc.Store().WriteText(filename, markdown)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to write search results: %v", err)), nil
	}

	logger.Info("search results saved", logging.KeyPath, handle.Path)

	return marshalResult(SearchResult{
		Path:         handle.Path,
		SizeBytes:    handle.Size,
		MatchCount:   len(messages),
		Query:        queryStr,
		MetadataList: metadataList,
	})
}

func handleGetEmails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	logger := logging.NewDualLogger(ctx, nil)
	args := request.GetArguments()

	messageIDs, err := batch.ParseStringOrArray(args["message_ids"], "message_ids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var fieldNames []string
	if _, ok := args["fields"]; ok {
		fieldNames, err = batch.ParseStringOrArray(args["fields"], "fields")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	fields := format.ParseFieldSet(fieldNames)

	logger.Info("retrieving emails", "count", len(messageIDs))

	// Every id is attempted; one failure never aborts the rest.
	results := batch.ProcessBatch(messageIDs, func(messageID string) (string, error) {
		msg, err := sc.GmailClient().GetMessage(messageID)
		if err != nil {
			return "", err
		}

		meta := format.BuildEmailMetadata(msg, messageID)
		markdown := format.EmailMarkdown(msg, messageID, gmail.ExtractBody(msg))

		filename := fmt.Sprintf("email_%s_%s.md", messageID, meta.Subject)
		handle, err := sc.Store().WriteText(filename, markdown)
		if err != nil {
			return "", err
		}

		download := EmailDownloadResult{
			Path:      handle.Path,
			SizeBytes: handle.Size,
			Metadata:  meta,
		}
		downloadJSON, err := json.Marshal(download)
		if err != nil {
			return "", err
		}

		block := format.RenderFields(msg, messageID, fields)
		return fmt.Sprintf("%s\n%s", strings.TrimRight(block, "\n"), downloadJSON), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleGetThread(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	logger := logging.NewDualLogger(ctx, nil)
	args := request.GetArguments()

	threadID, ok := args["thread_id"].(string)
	if !ok || threadID == "" {
		return mcp.NewToolResultError("thread_id is required"), nil
	}

	logger.Info("downloading thread", logging.KeyThreadID, threadID)

	thread, err := sc.GmailClient().GetThread(threadID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get thread: %v", err)), nil
	}

	messages := make([]format.MessageWithBody, 0, len(thread.Messages))
	for _, msg := range thread.Messages {
		messages = append(messages, format.MessageWithBody{Message: msg, Body: gmail.ExtractBody(msg)})
	}

	subject := "No Subject"
	if len(thread.Messages) > 0 {
		subject = format.BuildEmailMetadata(thread.Messages[0], thread.Messages[0].Id).Subject
	}

	markdown := format.ThreadMarkdown(threadID, messages)

	filename := fmt.Sprintf("thread_%s_%s.md", threadID, subject)
	handle, err := sc.Store().WriteText(filename, markdown)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to write thread: %v", err)), nil
	}

	logger.Info("thread saved", logging.KeyPath, handle.Path)

	return marshalResult(ThreadDownloadResult{
		Path:         handle.Path,
		SizeBytes:    handle.Size,
		MessageCount: len(thread.Messages),
		ThreadID:     threadID,
		Subject:      subject,
		DateRange:    format.ThreadDateRange(thread.Messages),
	})
}
