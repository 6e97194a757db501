// Package formbuilder decorates native form controls with a label, a
// required marker, inline validation feedback, and hint and addendum text,
// and renders the purpose buttons and links that close a form.
//
// A Builder is bound to one object:
//
//	f, err := formbuilder.New(article)
//	html, err := f.TextField("title", formbuilder.FieldOptions{
//		Required: formbuilder.RequiredOn(),
//		Hint:     "Keep it short",
//	})
//
// produces
//
//	<p class="error text"><label for="article_title">Title: <em class="required">(required)</em><span class="feedback">Can&#39;t be blank.</span></label><input id="article_title" name="article[title]" type="text"><span class="hint">Keep it short</span></p>
//
// when article reports "can't be blank" for title.
package formbuilder
