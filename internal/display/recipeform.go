package display

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/api"
	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/form"
)

const recipeFormFields = 6

// recipeForm is the create/edit overlay used by the my-recipes page.
// recipeID zero means create.
type recipeForm struct {
	open     bool
	recipeID int

	title        textinput.Model
	cookingTime  textinput.Model
	description  textarea.Model
	imageURL     textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model
	focus        int

	errs       form.Errors
	serverErr  string
	submitting bool
}

// openFor resets the overlay, prefilled from the recipe when editing.
func (f *recipeForm) openFor(r *domain.Recipe) {
	f.open = true
	f.recipeID = 0
	f.focus = 0
	f.errs = nil
	f.serverErr = ""
	f.submitting = false

	f.title = newInput("e.g., Classic Spaghetti Carbonara")
	f.cookingTime = newInput("e.g., 30")
	f.cookingTime.CharLimit = 4
	f.description = newArea("Brief description of your recipe...")
	f.description.SetHeight(2)
	f.imageURL = newInput("https://example.com/recipe-image.jpg")
	f.ingredients = newArea("List ingredients, one per line...")
	f.instructions = newArea("Step-by-step instructions...")

	if r != nil {
		f.recipeID = r.ID
		f.title.SetValue(r.Title)
		f.cookingTime.SetValue(strconv.Itoa(r.CookingTime))
		f.description.SetValue(r.Description)
		f.imageURL.SetValue(r.ImageURL)
		f.ingredients.SetValue(r.Ingredients)
		f.instructions.SetValue(r.Instructions)
	}
	f.setFocus(0)
}

func (f *recipeForm) close() {
	f.open = false
}

func (f *recipeForm) editing() bool { return f.recipeID != 0 }

func (f *recipeForm) setFocus(i int) {
	f.focus = (i + recipeFormFields) % recipeFormFields
	f.title.Blur()
	f.cookingTime.Blur()
	f.description.Blur()
	f.imageURL.Blur()
	f.ingredients.Blur()
	f.instructions.Blur()
	switch f.focus {
	case 0:
		f.title.Focus()
	case 1:
		f.cookingTime.Focus()
	case 2:
		f.description.Focus()
	case 3:
		f.imageURL.Focus()
	case 4:
		f.ingredients.Focus()
	case 5:
		f.instructions.Focus()
	}
}

// submit validates and issues the create or update call.
func (f *recipeForm) submit(d deps) tea.Cmd {
	raw := form.Recipe{
		Title:        strings.TrimSpace(f.title.Value()),
		Description:  strings.TrimSpace(f.description.Value()),
		Ingredients:  strings.TrimSpace(f.ingredients.Value()),
		Instructions: strings.TrimSpace(f.instructions.Value()),
		CookingTime:  strings.TrimSpace(f.cookingTime.Value()),
		ImageURL:     strings.TrimSpace(f.imageURL.Value()),
	}
	params, errs := raw.Validate()
	f.errs = errs
	f.serverErr = ""
	if len(errs) > 0 {
		return nil
	}
	f.submitting = true

	recipeID := f.recipeID
	return func() tea.Msg {
		var err error
		if recipeID != 0 {
			_, err = d.client.UpdateRecipe(d.ctx, recipeID, params)
		} else {
			_, err = d.client.CreateRecipe(d.ctx, params)
		}
		return recipeSavedMsg{pageGen: pageGen{gen: d.gen}, err: err}
	}
}

// saved handles the submit result; it reports whether the overlay
// closed (signalling the page to refetch).
func (f *recipeForm) saved(msg recipeSavedMsg) bool {
	f.submitting = false
	if msg.err != nil {
		f.serverErr = api.ErrorMessage(msg.err, "Error saving recipe")
		return false
	}
	f.close()
	return true
}

// handleKey consumes a key while the overlay is open. It returns the
// follow-up command; closing on esc is internal.
func (f *recipeForm) handleKey(msg tea.KeyMsg, d deps) tea.Cmd {
	if f.submitting {
		return nil
	}
	switch msg.String() {
	case "esc":
		f.close()
		return nil
	case "tab":
		f.setFocus(f.focus + 1)
		return nil
	case "shift+tab":
		f.setFocus(f.focus - 1)
		return nil
	case "ctrl+s":
		return f.submit(d)
	case "enter":
		// Single-line fields advance on enter; textareas take the
		// newline.
		switch f.focus {
		case 0, 1, 3:
			f.setFocus(f.focus + 1)
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.title, cmd = f.title.Update(msg)
	case 1:
		f.cookingTime, cmd = f.cookingTime.Update(msg)
	case 2:
		f.description, cmd = f.description.Update(msg)
	case 3:
		f.imageURL, cmd = f.imageURL.Update(msg)
	case 4:
		f.ingredients, cmd = f.ingredients.Update(msg)
	case 5:
		f.instructions, cmd = f.instructions.Update(msg)
	}
	return cmd
}

func (f recipeForm) View() string {
	var b strings.Builder
	if f.editing() {
		b.WriteString(titleStyle.Render("Edit Recipe"))
	} else {
		b.WriteString(titleStyle.Render("Create New Recipe"))
	}
	b.WriteString("\n\n")

	if f.serverErr != "" {
		b.WriteString(urgentStyle.Render(f.serverErr))
		b.WriteString("\n\n")
	}

	b.WriteString(renderField("Recipe Title", f.title.View(), f.errs.First("Title")))
	b.WriteByte('\n')
	b.WriteString(renderField("Cooking Time (minutes)", f.cookingTime.View(), f.errs.First("CookingTime")))
	b.WriteByte('\n')
	b.WriteString(renderField("Description (optional)", f.description.View(), f.errs.First("Description")))
	b.WriteByte('\n')
	b.WriteString(renderField("Image URL (optional)", f.imageURL.View(), f.errs.First("ImageURL")))
	b.WriteByte('\n')
	b.WriteString(renderField("Ingredients (one per line)", f.ingredients.View(), f.errs.First("Ingredients")))
	b.WriteByte('\n')
	b.WriteString(renderField("Instructions (one step per line)", f.instructions.View(), f.errs.First("Instructions")))
	b.WriteByte('\n')

	if f.submitting {
		b.WriteString(secondaryStyle.Render("Saving..."))
	} else {
		b.WriteString(secondaryStyle.Render("ctrl+s: save    tab: next field    esc: cancel"))
	}
	b.WriteByte('\n')

	return panelStyle.Render(b.String()) + "\n"
}
