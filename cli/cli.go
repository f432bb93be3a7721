// Package cli implements the interactive shell over the forum service. It is
// a thin presentation layer: every rule lives in the forum package, and every
// operation error is shown as a transient notice rather than ending the run.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"serverhub/forum"
	"serverhub/models"
)

// Shell reads commands from in and writes all output to out.
type Shell struct {
	svc *forum.Service
	in  *bufio.Scanner
	out io.Writer
}

func New(svc *forum.Service) *Shell {
	return &Shell{svc: svc, in: bufio.NewScanner(os.Stdin), out: os.Stdout}
}

// Run executes the read-dispatch loop until EOF or the quit command.
func (sh *Shell) Run() error {
	fmt.Fprintln(sh.out, "ServerHub community forum. Type 'help' for commands.")
	for {
		fmt.Fprint(sh.out, sh.prompt())
		line, ok := sh.readLine()
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		sh.dispatch(fields[0], fields[1:])
	}
}

func (sh *Shell) prompt() string {
	if u := sh.svc.CurrentUser(); u != nil {
		return fmt.Sprintf("%s> ", u.Nickname)
	}
	return "guest> "
}

func (sh *Shell) dispatch(cmd string, args []string) {
	switch cmd {
	case "help":
		sh.printHelp()
	case "boards":
		sh.printBoards()
	case "posts":
		sh.printPosts(args)
	case "post":
		sh.createPost()
	case "register":
		sh.register()
	case "login":
		sh.login()
	case "logout":
		if err := sh.svc.Logout(); err != nil {
			sh.notice(err)
			return
		}
		fmt.Fprintln(sh.out, "Signed out. See you soon!")
	case "whoami":
		sh.whoami()
	case "users":
		sh.printUsers()
	case "role":
		sh.changeRole(args)
	case "ban":
		sh.toggleBan(args)
	case "newboard":
		sh.createBoard()
	default:
		fmt.Fprintf(sh.out, "Unknown command %q. Type 'help'.\n", cmd)
	}
}

func (sh *Shell) printHelp() {
	fmt.Fprint(sh.out, `Commands:
  boards                 list boards
  posts <board>          list posts on a board
  post                   create a post (signed in, not banned)
  register               create an account and sign in
  login                  sign in
  logout                 sign out
  whoami                 show the current session
  users                  list registered users
  role <user> <role>     change a user's role (admin)
  ban <user>             ban or unban a user (moderator or admin)
  newboard               create a board (admin)
  quit                   leave
`)
}

func (sh *Shell) printBoards() {
	for _, c := range sh.svc.Categories() {
		fmt.Fprintf(sh.out, "  %-15s %s — %s\n", c.ID, c.Name, c.Description)
	}
}

func (sh *Shell) printPosts(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(sh.out, "usage: posts <board>")
		return
	}
	posts := sh.svc.ListByCategory(args[0])
	if len(posts) == 0 {
		fmt.Fprintln(sh.out, "No topics on this board yet. Be the first to post!")
		return
	}
	for _, p := range posts {
		pin := ""
		if p.IsPinned {
			pin = "[pinned] "
		}
		fmt.Fprintf(sh.out, "%s%s — %s (%s)\n    %s\n    replies: %d  views: %d  %s\n",
			pin, p.Title, p.Author.Nickname, p.Author.Username,
			p.Content, p.Replies, p.Views, p.Timestamp.Format("2006-01-02 15:04"))
	}
}

func (sh *Shell) createPost() {
	board := sh.ask("Board id: ")
	title := sh.ask("Title: ")
	content := sh.ask("Content: ")
	post, err := sh.svc.CreatePost(sh.svc.CurrentUser(), title, content, board)
	if err != nil {
		sh.notice(err)
		return
	}
	fmt.Fprintf(sh.out, "Post %s published on %s.\n", post.ID, post.Category)
}

func (sh *Shell) register() {
	username := sh.ask("Username: ")
	nickname := sh.ask("Nickname: ")
	password := sh.ask("Password: ")
	u, err := sh.svc.Register(username, password, nickname)
	if err != nil {
		sh.notice(err)
		return
	}
	fmt.Fprintf(sh.out, "Welcome, %s! Your role is %s.\n", u.Nickname, u.Role)
}

func (sh *Shell) login() {
	username := sh.ask("Username: ")
	password := sh.ask("Password: ")
	u, err := sh.svc.Login(username, password)
	if err != nil {
		sh.notice(err)
		return
	}
	fmt.Fprintf(sh.out, "Welcome back, %s!\n", u.Nickname)
}

func (sh *Shell) whoami() {
	u := sh.svc.CurrentUser()
	if u == nil {
		fmt.Fprintln(sh.out, "Not signed in.")
		return
	}
	fmt.Fprintf(sh.out, "%s (%s) role=%s banned=%t\n", u.Nickname, u.Username, u.Role, u.IsBanned)
}

func (sh *Shell) printUsers() {
	for _, u := range sh.svc.Users() {
		fmt.Fprintf(sh.out, "  [%s] %-20s %-12s banned=%t\n", u.Avatar, u.Username, u.Role, u.IsBanned)
	}
}

func (sh *Shell) changeRole(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(sh.out, "usage: role <user> <admin|moderator|member|banned>")
		return
	}
	u, err := sh.svc.ChangeRole(sh.svc.CurrentUser(), args[0], models.Role(args[1]))
	if err != nil {
		sh.notice(err)
		return
	}
	fmt.Fprintf(sh.out, "%s is now %s.\n", u.Username, u.Role)
}

func (sh *Shell) toggleBan(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(sh.out, "usage: ban <user>")
		return
	}
	u, err := sh.svc.ToggleBan(sh.svc.CurrentUser(), args[0])
	if err != nil {
		sh.notice(err)
		return
	}
	if u.IsBanned {
		fmt.Fprintf(sh.out, "%s is banned.\n", u.Username)
	} else {
		fmt.Fprintf(sh.out, "%s is unbanned.\n", u.Username)
	}
}

func (sh *Shell) createBoard() {
	name := sh.ask("Board name: ")
	icon := sh.ask("Icon: ")
	description := sh.ask("Description: ")
	cat, err := sh.svc.CreateCategory(sh.svc.CurrentUser(), name, icon, description)
	if err != nil {
		sh.notice(err)
		return
	}
	fmt.Fprintf(sh.out, "Board %q created.\n", cat.ID)
}

func (sh *Shell) ask(prompt string) string {
	fmt.Fprint(sh.out, prompt)
	line, _ := sh.readLine()
	return line
}

func (sh *Shell) readLine() (string, bool) {
	if !sh.in.Scan() {
		return "", false
	}
	return sh.in.Text(), true
}

func (sh *Shell) notice(err error) {
	fmt.Fprintf(sh.out, "! %v\n", err)
}
