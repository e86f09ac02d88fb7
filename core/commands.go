package core

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
)

func (e *editor) dispatchResult(command string, lines []string) {
	e.state.Result = lines
	select {
	case e.updateSignal <- ResultSignal{command: command, lines: lines}:
	default:
		log.Println("Channel is full, unable to send result signal")
	}
}

func foundMessage(what string, found bool) string {
	if found {
		return fmt.Sprintf("%s found", what)
	}
	return fmt.Sprintf("%s not found", what)
}

// requireArgs fails with ErrMissingArgument when fewer than n arguments are given.
func requireArgs(command string, args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%s: %w: want %d, got %d", command, ErrMissingArgument, n, len(args))
	}
	return nil
}

// ExecuteCommand executes a command line (typically entered in command mode).
func (e *editor) ExecuteCommand(cmd string) error {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	parts := strings.Fields(cmd)
	command := parts[0]
	args := parts[1:]
	// rest keeps inner spacing for commands that search for free text
	rest := strings.TrimSpace(strings.TrimPrefix(cmd, command))

	err := e.execute(command, args, rest)
	if err != nil {
		log.Printf("Editor: command %q failed: %v", cmd, err)
	}
	return err
}

func (e *editor) execute(command string, args []string, rest string) error {
	doc := e.doc

	switch command {
	case "q", "quit":
		if e.IsModified() {
			return ErrUnsavedChanges
		}
		e.Quit()
		return nil

	case "q!", "quit!":
		e.Quit()
		return nil

	case "w", "write", "save":
		name := ""
		if len(args) > 0 {
			name = args[0]
		} else if !e.IsModified() && e.fileName != "" {
			return ErrNoChangesToSave
		}
		if err := e.Save(name); err != nil {
			return err
		}
		e.DispatchMessage(ChangesSavedMessage, fmt.Sprintf("written to %s", e.fileName))
		return nil

	case "wq":
		if err := e.execute("w", args, rest); err != nil && !errors.Is(err, ErrNoChangesToSave) {
			return err
		}
		return e.execute("q", nil, "")

	case "e", "edit", "open":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		if err := e.Open(args[0]); err != nil {
			return err
		}
		e.DispatchMessage(FileOpenedMessage, fmt.Sprintf("opened %s (%d lines)", args[0], e.doc.LineCount()))
		return nil

	case "find", "findcase":
		if rest == "" {
			return fmt.Errorf("%s: %w", command, ErrMissingArgument)
		}
		caseSensitive := e.state.CaseSensitive || command == "findcase"
		found := doc.FindWord(rest, caseSensitive)
		e.DispatchMessage(FoundMessage, foundMessage("word", found))
		return nil

	case "sentence":
		if rest == "" {
			return fmt.Errorf("%s: %w", command, ErrMissingArgument)
		}
		e.DispatchMessage(FoundMessage, foundMessage("sentence", doc.FindSentence(rest)))
		return nil

	case "sub", "substring":
		if rest == "" {
			return fmt.Errorf("%s: %w", command, ErrMissingArgument)
		}
		e.DispatchMessage(FoundMessage, foundMessage("substring", doc.FindSubstring(rest)))
		return nil

	case "count":
		if rest == "" {
			return fmt.Errorf("%s: %w", command, ErrMissingArgument)
		}
		e.DispatchMessage(StatisticsMessage, fmt.Sprintf("substring count: %d", doc.SubstringCount(rest)))
		return nil

	case "replace":
		if err := requireArgs(command, args, 2); err != nil {
			return err
		}
		if !doc.ReplaceFirst(args[0], args[1]) {
			e.DispatchMessage(NotFoundMessage, foundMessage(strconv.Quote(args[0]), false))
			return nil
		}
		e.SetCursor(e.cursor)
		e.DispatchMessage(ReplacedMessage, "1 occurrence replaced")
		return nil

	case "replaceall":
		if err := requireArgs(command, args, 2); err != nil {
			return err
		}
		n := doc.ReplaceAll(args[0], args[1])
		e.SetCursor(e.cursor)
		e.DispatchMessage(ReplacedMessage, fmt.Sprintf("%d occurrences replaced", n))
		return nil

	case "prefix", "postfix":
		if err := requireArgs(command, args, 2); err != nil {
			return err
		}
		var n int
		if command == "prefix" {
			n = doc.AddPrefix(args[0], args[1])
		} else {
			n = doc.AddPostfix(args[0], args[1])
		}
		e.SetCursor(e.cursor)
		e.DispatchMessage(ReplacedMessage, fmt.Sprintf("%s added on %d lines", command, n))
		return nil

	case "upper", "lower":
		row, err := doc.FlatIndex(e.active, e.cursor.Position.Row)
		if err != nil {
			return err
		}
		word, err := doc.ConvertWordCase(row, e.cursor.Position.Col, command == "upper")
		if err != nil {
			return err
		}
		if word == "" {
			e.DispatchMessage(NotFoundMessage, "no word under cursor")
			return nil
		}
		e.DispatchMessage(CaseMessage, word)
		return nil

	case "upper!", "lower!":
		doc.ConvertCase(command == "upper!")
		e.DispatchMessage(CaseMessage, "document case converted")
		return nil

	case "stats":
		s := doc.Stats()
		lines := []string{
			fmt.Sprintf("words: %d", s.Words),
			"average word length: " + formatAverage(s),
			"smallest word length: " + formatLength(s.Smallest, s.HasWords()),
			"largest word length: " + formatLength(s.Largest, s.HasWords()),
			fmt.Sprintf("special characters: %d", s.SpecialChars),
			fmt.Sprintf("sentences: %d", s.Sentences),
			fmt.Sprintf("paragraphs: %d", s.Paragraphs),
		}
		e.dispatchResult(command, lines)
		e.DispatchMessage(StatisticsMessage, strings.Join(lines, ", "))
		return nil

	case "words":
		e.DispatchMessage(StatisticsMessage, fmt.Sprintf("word count: %d", doc.WordCount()))
		return nil

	case "avg":
		avg, ok := doc.AverageWordLength()
		if !ok {
			return fmt.Errorf("average word length: %w: no words in the document", ErrNoData)
		}
		e.DispatchMessage(StatisticsMessage, fmt.Sprintf("average word length: %.2f", avg))
		return nil

	case "min", "max":
		var n int
		var ok bool
		label := "smallest"
		if command == "min" {
			n, ok = doc.SmallestWordLength()
		} else {
			n, ok = doc.LargestWordLength()
			label = "largest"
		}
		if !ok {
			return fmt.Errorf("%s word length: %w: no words in the document", label, ErrNoData)
		}
		e.DispatchMessage(StatisticsMessage, fmt.Sprintf("%s word length: %d", label, n))
		return nil

	case "special":
		e.DispatchMessage(StatisticsMessage, fmt.Sprintf("special character count: %d", doc.SpecialCharCount()))
		return nil

	case "sentences":
		e.DispatchMessage(StatisticsMessage, fmt.Sprintf("sentence count: %d", doc.SentenceCount()))
		return nil

	case "paragraphs":
		e.DispatchMessage(StatisticsMessage, fmt.Sprintf("paragraph count: %d", doc.ParagraphCount()))
		return nil

	case "game":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		words := doc.WordsFormableFrom(args[0])
		e.dispatchResult(command, words)
		e.DispatchMessage(StatisticsMessage, fmt.Sprintf("%d words can be formed: %s", len(words), strings.Join(words, " ")))
		return nil

	case "merge":
		if err := requireArgs(command, args, 2); err != nil {
			return err
		}
		if len(args) == 2 {
			if err := MergeInto(e.storage, args[0], args[1]); err != nil {
				return err
			}
			e.DispatchMessage(MergedMessage, fmt.Sprintf("files merged into %s", args[0]))
			return nil
		}
		if err := MergeToNew(e.storage, args[0], args[1], args[2]); err != nil {
			return err
		}
		e.DispatchMessage(MergedMessage, fmt.Sprintf("files merged into %s", args[2]))
		return nil

	case "rle":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		if err := EncodeResource(e.storage, args[0]); err != nil {
			return err
		}
		e.DispatchMessage(EncodedMessage, fmt.Sprintf("%s encoded", args[0]))
		return nil

	case "unrle":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		if err := DecodeResource(e.storage, args[0]); err != nil {
			return err
		}
		e.DispatchMessage(DecodedMessage, fmt.Sprintf("%s decoded", args[0]))
		return nil

	case "para":
		return e.paragraphCommand(args)

	case "yank":
		if err := e.Copy(); err != nil {
			return err
		}
		e.DispatchMessage(YankMessage)
		return nil

	case "paste":
		n, err := e.Paste()
		if err != nil {
			return err
		}
		e.DispatchMessage(EmptyMessage, fmt.Sprintf("%d characters pasted", n))
		return nil

	default:
		// Line number navigation within the active paragraph (e.g., ":10")
		lineNum, scanErr := strconv.Atoi(command)
		if scanErr == nil && lineNum > 0 {
			e.SetCursor(Cursor{Position: Position{Row: lineNum - 1}})
			e.ScrollViewport()
			return nil
		}
		return fmt.Errorf("%w: %s", ErrInvalidCommand, command)
	}
}

func (e *editor) paragraphCommand(args []string) error {
	if len(args) == 0 {
		if err := e.doc.InsertParagraphAt(e.active+1, NewParagraph()); err != nil {
			return err
		}
		if err := e.SetActiveParagraph(e.active + 1); err != nil {
			return err
		}
		e.DispatchMessage(ParagraphMessage, fmt.Sprintf("paragraph %d/%d", e.active+1, e.doc.NumParagraphs()))
		return nil
	}

	var err error
	switch args[0] {
	case "next":
		err = e.Move(KeyPageDown)
	case "prev":
		err = e.Move(KeyPageUp)
	default:
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return fmt.Errorf("para: %w: %s", ErrInvalidCommand, args[0])
		}
		err = e.SetActiveParagraph(n - 1)
	}
	if err != nil {
		return err
	}
	e.DispatchMessage(ParagraphMessage, fmt.Sprintf("paragraph %d/%d", e.active+1, e.doc.NumParagraphs()))
	return nil
}

func formatAverage(s Statistics) string {
	avg, ok := s.AverageWordLength()
	if !ok {
		return "no words"
	}
	return strconv.FormatFloat(avg, 'f', 2, 64)
}

func formatLength(n int, ok bool) string {
	if !ok {
		return "no words"
	}
	return strconv.Itoa(n)
}
